// Package xmldoc genera los documentos XML del servicio: el manifiesto de despacho de una orden
// y la exportación XML del libro de trazabilidad.
package xmldoc

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/xml"
	"fmt"
	"time"

	"github.com/beevik/etree"
	"github.com/ucarion/c14n"

	"github.com/jhoicas/stockbridge-api/internal/application/orders"
)

// Namespaces y algoritmos.
const (
	NsManifest  = "urn:stockbridge:transfer-manifest:1"
	NsLedger    = "urn:stockbridge:transfer-ledger:1"
	AlgC14N     = "http://www.w3.org/TR/2001/REC-xml-c14n-20010315"
	AlgSHA256   = "http://www.w3.org/2001/04/xmlenc#sha256"
	timeLayout  = time.RFC3339
	integrityEl = "Integrity"
)

var _ orders.ManifestBuilder = (*ManifestBuilder)(nil)

// ManifestBuilder construye el manifiesto de despacho.
//
// El digest es SHA-256 (hex) de la forma canónica C14N del elemento raíz sin el bloque
// <Integrity>. Para verificar: quitar <Integrity>, canonicalizar y comparar con DigestValue.
// El XML se escribe sin indentar para que el digest sobreviva a un parseo y reescritura.
type ManifestBuilder struct {
	now func() time.Time
}

// NewManifestBuilder crea el builder.
func NewManifestBuilder() *ManifestBuilder {
	return &ManifestBuilder{now: time.Now}
}

// BuildManifest genera el XML y su digest.
func (b *ManifestBuilder) BuildManifest(_ context.Context, m orders.Manifest) ([]byte, string, error) {
	o := m.Order
	root := etree.NewElement("TransferManifest")
	root.CreateAttr("xmlns", NsManifest)
	root.CreateAttr("Id", o.ID)

	header := root.CreateElement("Header")
	header.CreateElement("OrderID").SetText(o.ID)
	header.CreateElement("Status").SetText(o.Status)
	header.CreateElement("From").SetText(o.Store)
	header.CreateElement("To").SetText(o.Destination)
	header.CreateElement("CreatedBy").SetText(o.CreatedBy)
	if o.AssignedTo != "" {
		header.CreateElement("AssignedTo").SetText(o.AssignedTo)
	}
	header.CreateElement("CreatedAt").SetText(o.CreatedAt.UTC().Format(timeLayout))
	header.CreateElement("IssuedAt").SetText(b.now().UTC().Format(timeLayout))

	items := root.CreateElement("Items")
	items.CreateAttr("count", fmt.Sprint(len(m.Lines)))
	for _, l := range m.Lines {
		it := items.CreateElement("Item")
		it.CreateAttr("line", fmt.Sprint(l.Item.ID))
		if l.Item.Barcode != "" {
			it.CreateElement("Barcode").SetText(l.Item.Barcode)
		}
		it.CreateElement("Name").SetText(l.Item.Name)
		qty := it.CreateElement("Quantity")
		qty.CreateAttr("unit", l.Item.Measurement)
		qty.SetText(l.Item.Quantity.String())
		it.CreateElement("UnitCost").SetText(l.UnitCost.StringFixed(2))
		it.CreateElement("Cost").SetText(l.Cost.StringFixed(2))
		it.CreateElement("Picked").SetText(fmt.Sprint(l.Item.Picked))
	}
	root.CreateElement("TotalCost").SetText(m.TotalCost.StringFixed(2))

	digest, err := Digest(root)
	if err != nil {
		return nil, "", err
	}
	integrity := root.CreateElement(integrityEl)
	integrity.CreateElement("CanonicalizationMethod").CreateAttr("Algorithm", AlgC14N)
	integrity.CreateElement("DigestMethod").CreateAttr("Algorithm", AlgSHA256)
	integrity.CreateElement("DigestValue").SetText(digest)

	body, err := write(root)
	if err != nil {
		return nil, "", err
	}
	return body, digest, nil
}

// Digest SHA-256 hex de la forma canónica del elemento, excluyendo un hijo <Integrity> si existe.
func Digest(el *etree.Element) (string, error) {
	cp := el.Copy()
	if in := cp.SelectElement(integrityEl); in != nil {
		cp.RemoveChild(in)
	}
	doc := etree.NewDocument()
	doc.SetRoot(cp)
	raw, err := doc.WriteToBytes()
	if err != nil {
		return "", fmt.Errorf("xmldoc: serializar: %w", err)
	}
	canon, err := canonicalize(raw)
	if err != nil {
		return "", fmt.Errorf("xmldoc: canonicalizar: %w", err)
	}
	sum := sha256.Sum256(canon)
	return hex.EncodeToString(sum[:]), nil
}

// VerifyDigest recalcula el digest del documento y lo compara con su DigestValue.
func VerifyDigest(xmlBytes []byte) (bool, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(xmlBytes); err != nil {
		return false, fmt.Errorf("xmldoc: parsear XML: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return false, fmt.Errorf("xmldoc: documento sin raíz")
	}
	dv := root.FindElement("./" + integrityEl + "/DigestValue")
	if dv == nil {
		return false, fmt.Errorf("xmldoc: documento sin DigestValue")
	}
	got, err := Digest(root)
	if err != nil {
		return false, err
	}
	return got == dv.Text(), nil
}

func canonicalize(data []byte) ([]byte, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Entity = map[string]string{}
	return c14n.Canonicalize(dec)
}

func write(root *etree.Element) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.SetRoot(root)
	var out bytes.Buffer
	if _, err := doc.WriteTo(&out); err != nil {
		return nil, fmt.Errorf("xmldoc: escribir: %w", err)
	}
	return out.Bytes(), nil
}
