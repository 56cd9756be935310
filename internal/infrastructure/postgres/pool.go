// Package postgres backend persistente del catálogo, el tablero de órdenes, el libro y los operadores.
package postgres

import (
	"context"
	"fmt"
	"net"
	"time"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/stockbridge-api/pkg/config"
)

// PoolOptions límites del pool. Los valores cero toman los de DefaultPoolOptions.
type PoolOptions struct {
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
}

// DefaultPoolOptions dimensionado para un único proceso de API.
var DefaultPoolOptions = PoolOptions{
	MaxConns:        10,
	MinConns:        1,
	MaxConnLifetime: time.Hour,
	MaxConnIdleTime: 15 * time.Minute,
}

// NewPool abre el pool, registra el codec NUMERIC <-> decimal.Decimal y verifica la conexión.
// El dial prefiere IPv4: los contenedores sin IPv6 fallan contra hosts que resuelven AAAA primero.
func NewPool(ctx context.Context, cfg config.DBConfig, opts PoolOptions) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}
	applyPoolOptions(poolConfig, opts)

	poolConfig.ConnConfig.DialFunc = dialPreferIPv4
	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return pool, nil
}

func applyPoolOptions(c *pgxpool.Config, opts PoolOptions) {
	d := DefaultPoolOptions
	if opts.MaxConns > 0 {
		d.MaxConns = opts.MaxConns
	}
	if opts.MinConns > 0 {
		d.MinConns = opts.MinConns
	}
	if opts.MaxConnLifetime > 0 {
		d.MaxConnLifetime = opts.MaxConnLifetime
	}
	if opts.MaxConnIdleTime > 0 {
		d.MaxConnIdleTime = opts.MaxConnIdleTime
	}
	c.MaxConns = d.MaxConns
	c.MinConns = d.MinConns
	c.MaxConnLifetime = d.MaxConnLifetime
	c.MaxConnIdleTime = d.MaxConnIdleTime
	c.HealthCheckPeriod = time.Minute
}

func dialPreferIPv4(ctx context.Context, network, addr string) (net.Conn, error) {
	dialer := &net.Dialer{Timeout: 10 * time.Second}
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return nil, err
	}
	if ip := firstIPv4(ctx, host); ip != "" {
		return dialer.DialContext(ctx, "tcp4", net.JoinHostPort(ip, port))
	}
	return dialer.DialContext(ctx, network, addr)
}

// firstIPv4 devuelve "" si el host no tiene registro A.
func firstIPv4(ctx context.Context, host string) string {
	if ip := net.ParseIP(host); ip != nil {
		if ip.To4() != nil {
			return host
		}
		return ""
	}
	ips, err := net.DefaultResolver.LookupIP(ctx, "ip4", host)
	if err != nil || len(ips) == 0 {
		return ""
	}
	return ips[0].String()
}
