// Package transfer orquesta el armado de traslados: sesiones de carrito por operador,
// selección de tienda y destino, alta por producto o barcode y envío.
package transfer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stockbridge-api/internal/application/catalog"
	"github.com/jhoicas/stockbridge-api/internal/application/dto"
	"github.com/jhoicas/stockbridge-api/internal/domain"
	"github.com/jhoicas/stockbridge-api/internal/domain/entity"
	"github.com/jhoicas/stockbridge-api/internal/domain/repository"
	"github.com/jhoicas/stockbridge-api/internal/domain/transfer"
	"github.com/jhoicas/stockbridge-api/pkg/logger"
)

// Valores iniciales de una sesión cuando no se indican.
const (
	DefaultStore       = "Store A"
	DefaultDestination = "Kitchen"
)

// session un carrito y su contexto. mu serializa todas las operaciones sobre el carrito.
type session struct {
	mu          sync.Mutex
	id          string
	store       string
	destination string
	operator    string
	cart        *transfer.Cart
}

// UseCase sesiones de traslado en memoria del proceso.
type UseCase struct {
	catalog   repository.CatalogRepository
	locations repository.LocationRepository
	resolver  *catalog.Resolver
	recorder  OrderRecorder
	log       *logger.Logger
	now       func() time.Time

	mu       sync.RWMutex
	sessions map[string]*session
}

// NewUseCase construye el caso de uso. recorder puede ser nil.
func NewUseCase(
	catalogRepo repository.CatalogRepository,
	locations repository.LocationRepository,
	resolver *catalog.Resolver,
	recorder OrderRecorder,
	log *logger.Logger,
) *UseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &UseCase{
		catalog:   catalogRepo,
		locations: locations,
		resolver:  resolver,
		recorder:  recorder,
		log:       log.Component("transfer"),
		now:       time.Now,
		sessions:  make(map[string]*session),
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *UseCase) WithClock(now func() time.Time) *UseCase {
	uc.now = now
	return uc
}

// Open abre una sesión con carrito vacío. store y destination vacíos toman los valores por defecto.
func (uc *UseCase) Open(ctx context.Context, store, destination, operator string) (*dto.TransferSessionResponse, error) {
	if store == "" {
		store = DefaultStore
	}
	if destination == "" {
		destination = DefaultDestination
	}
	if err := uc.checkLocation(ctx, store, entity.LocationKindStore); err != nil {
		return nil, err
	}
	if err := uc.checkLocation(ctx, destination, entity.LocationKindDestination); err != nil {
		return nil, err
	}
	s := &session{
		id:          uuid.New().String(),
		store:       store,
		destination: destination,
		operator:    operator,
		cart:        transfer.NewCart(),
	}
	uc.mu.Lock()
	uc.sessions[s.id] = s
	uc.mu.Unlock()

	uc.log.Debug().Str("session", s.id).Str("store", store).Str("destination", destination).Msg("sesión de traslado abierta")
	return s.response(), nil
}

// Get estado de la sesión.
func (uc *UseCase) Get(ctx context.Context, id string) (*dto.TransferSessionResponse, error) {
	var out *dto.TransferSessionResponse
	err := uc.withSession(id, func(s *session) error {
		out = s.response()
		return nil
	})
	return out, err
}

// Close descarta la sesión y su carrito.
func (uc *UseCase) Close(ctx context.Context, id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if _, ok := uc.sessions[id]; !ok {
		return domain.ErrSessionNotFound
	}
	delete(uc.sessions, id)
	return nil
}

// ListProducts productos de la tienda de la sesión que coinciden con query por nombre o barcode.
func (uc *UseCase) ListProducts(ctx context.Context, id, query string) (*dto.ProductListResponse, error) {
	var store string
	if err := uc.withSession(id, func(s *session) error {
		store = s.store
		return nil
	}); err != nil {
		return nil, err
	}
	list, err := uc.catalog.ListByStore(ctx, store)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	query = strings.TrimSpace(query)
	out := &dto.ProductListResponse{Items: []dto.ProductResponse{}}
	for _, p := range list {
		if catalog.MatchesProduct(p, query) {
			out.Items = append(out.Items, catalog.ToProductResponse(p))
		}
	}
	out.Total = len(out.Items)
	return out, nil
}

// SelectStore cambia la tienda de origen. El carrito se conserva.
func (uc *UseCase) SelectStore(ctx context.Context, id, store string) (*dto.TransferSessionResponse, error) {
	if err := uc.checkLocation(ctx, store, entity.LocationKindStore); err != nil {
		return nil, err
	}
	var out *dto.TransferSessionResponse
	err := uc.withSession(id, func(s *session) error {
		s.store = store
		out = s.response()
		return nil
	})
	return out, err
}

// SelectDestination cambia el destino. El carrito se conserva.
func (uc *UseCase) SelectDestination(ctx context.Context, id, destination string) (*dto.TransferSessionResponse, error) {
	if err := uc.checkLocation(ctx, destination, entity.LocationKindDestination); err != nil {
		return nil, err
	}
	var out *dto.TransferSessionResponse
	err := uc.withSession(id, func(s *session) error {
		s.destination = destination
		out = s.response()
		return nil
	})
	return out, err
}

// AddProduct agrega el producto por ID. No se valida que pertenezca a la tienda de la sesión.
func (uc *UseCase) AddProduct(ctx context.Context, id string, productID int64) (*dto.CartChangeResponse, error) {
	p, err := uc.catalog.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return uc.add(id, *p)
}

// AddByBarcode resuelve el barcode sobre el catálogo completo y agrega el producto.
// Un barcode sin producto no es error: Found=false y el carrito queda igual.
func (uc *UseCase) AddByBarcode(ctx context.Context, id, barcode string) (*dto.CartChangeResponse, error) {
	p, err := uc.resolver.Resolve(ctx, barcode)
	if errors.Is(err, domain.ErrNotFound) {
		var out *dto.CartChangeResponse
		err := uc.withSession(id, func(s *session) error {
			out = &dto.CartChangeResponse{Outcome: string(transfer.OutcomeMissing), Found: false, Session: *s.response()}
			return nil
		})
		return out, err
	}
	if err != nil {
		return nil, err
	}
	return uc.add(id, *p)
}

func (uc *UseCase) add(id string, p entity.Product) (*dto.CartChangeResponse, error) {
	var out *dto.CartChangeResponse
	err := uc.withSession(id, func(s *session) error {
		outcome := s.cart.Add(p)
		uc.log.Debug().Str("session", id).Int64("product_id", p.ID).Str("outcome", string(outcome)).Msg("producto agregado")
		out = &dto.CartChangeResponse{Outcome: string(outcome), Found: true, Session: *s.response()}
		return nil
	})
	return out, err
}

// SetQuantity fija la cantidad de una línea. Rechazos y líneas inexistentes no son errores:
// se informan en Outcome.
func (uc *UseCase) SetQuantity(ctx context.Context, id string, productID int64, quantity int) (*dto.CartChangeResponse, error) {
	var out *dto.CartChangeResponse
	err := uc.withSession(id, func(s *session) error {
		outcome := s.cart.SetQuantity(productID, quantity)
		if outcome == transfer.OutcomeRejected {
			uc.log.Debug().Str("session", id).Int64("product_id", productID).Int("quantity", quantity).Msg("cantidad supera stock disponible")
		}
		out = &dto.CartChangeResponse{Outcome: string(outcome), Found: true, Session: *s.response()}
		return nil
	})
	return out, err
}

// Remove elimina la línea; sin línea es no-op (Outcome missing).
func (uc *UseCase) Remove(ctx context.Context, id string, productID int64) (*dto.CartChangeResponse, error) {
	var out *dto.CartChangeResponse
	err := uc.withSession(id, func(s *session) error {
		outcome := transfer.OutcomeMissing
		if s.cart.Remove(productID) {
			outcome = transfer.OutcomeRemoved
		}
		out = &dto.CartChangeResponse{Outcome: string(outcome), Found: true, Session: *s.response()}
		return nil
	})
	return out, err
}

// Submit envía el carrito y lo vacía. Carrito vacío: domain.ErrEmptyCart.
// operator no vacío reemplaza al de la sesión. Con recorder, si el registro falla el carrito no se vacía.
func (uc *UseCase) Submit(ctx context.Context, id, operator string) (*dto.SubmissionResponse, error) {
	var out *dto.SubmissionResponse
	err := uc.withSession(id, func(s *session) error {
		if operator != "" {
			s.operator = operator
		}
		sub, err := transfer.Prepare(s.cart, s.store, s.destination, s.operator, uc.now())
		if err != nil {
			return err
		}
		var orderID string
		if uc.recorder != nil {
			orderID, err = uc.recorder.Record(ctx, sub)
			if err != nil {
				return fmt.Errorf("record order: %w", err)
			}
		}
		s.cart.Clear()
		uc.log.Info().
			Str("session", id).
			Str("store", sub.Store).
			Str("destination", sub.Destination).
			Str("operator", sub.Operator).
			Int("lines", len(sub.Lines)).
			Str("order_id", orderID).
			Msg("traslado enviado")
		out = &dto.SubmissionResponse{
			Message:     sub.Message,
			Store:       sub.Store,
			Destination: sub.Destination,
			Operator:    sub.Operator,
			Lines:       toLineResponses(sub.Lines),
			SubmittedAt: sub.SubmittedAt,
			OrderID:     orderID,
		}
		return nil
	})
	return out, err
}

func (uc *UseCase) withSession(id string, fn func(s *session) error) error {
	uc.mu.RLock()
	s, ok := uc.sessions[id]
	uc.mu.RUnlock()
	if !ok {
		return domain.ErrSessionNotFound
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s)
}

func (uc *UseCase) checkLocation(ctx context.Context, name, kind string) error {
	loc, err := uc.locations.GetByName(ctx, name)
	if err != nil {
		return fmt.Errorf("get location: %w", err)
	}
	if loc == nil || loc.Kind != kind {
		return fmt.Errorf("%w: ubicación %q no es %s", domain.ErrInvalidInput, name, kind)
	}
	return nil
}

func (s *session) response() *dto.TransferSessionResponse {
	return &dto.TransferSessionResponse{
		ID:          s.id,
		Store:       s.store,
		Destination: s.destination,
		Operator:    s.operator,
		Lines:       toLineResponses(s.cart.Lines()),
		ItemCount:   s.cart.Len(),
	}
}

func toLineResponses(lines []transfer.CartLine) []dto.CartLineResponse {
	out := make([]dto.CartLineResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, dto.CartLineResponse{
			ProductID:      l.ProductID,
			Name:           l.Name,
			Barcode:        l.Barcode,
			Measurement:    l.Measurement,
			Quantity:       l.Quantity,
			AvailableStock: l.AvailableStock,
		})
	}
	return out
}
