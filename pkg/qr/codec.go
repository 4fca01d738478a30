package qr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"
)

// CodeType identifies which tier of the code hierarchy a payload belongs to
type CodeType string

const (
	CodeTypeProduct     CodeType = "PRODUCT"
	CodeTypeFirstLevel  CodeType = "FIRST_LEVEL"
	CodeTypeSecondLevel CodeType = "SECOND_LEVEL"
	CodeTypeShipper     CodeType = "SHIPPER"
)

var (
	ErrInvalidFormat     = errors.New("invalid QR code format")
	ErrMissingFields     = errors.New("QR code missing required product information")
	ErrUnsupportedType   = errors.New("invalid code type")
	ErrNotFound          = errors.New("code not found in database")
	ErrDanglingReference = errors.New("product or batch not found")
	ErrReservedKey       = errors.New("extra field collides with a reserved payload key")
)

// ProductInfo is the read-only product snapshot embedded into payloads
type ProductInfo struct {
	ID             string
	Name           string
	SKUID          string
	GTIN           string
	MRP            float64
	RegistrationNo string
	ImageURL       string
}

// BatchInfo is the read-only batch snapshot embedded into payloads
type BatchInfo struct {
	ID          string
	BatchNo     string
	MfgDate     time.Time
	ExpiryDate  time.Time
	FactoryName string
	QAStatus    string
}

// coreKeys are the fixed payload keys in wire order. Third-party scanners
// decode these independently, so names and order must not change.
var coreKeys = []string{
	"type", "product_id", "product_name", "sku_id", "batch_id", "batch_no",
	"mfg_date", "expiry_date", "timestamp", "image_url", "mrp", "gtin",
	"registration_no", "factory_name", "qa_status",
}

// Codec builds and parses the QR payloads embedded in scan URLs.
// BaseURL is the fixed deployment origin; per-request hosts are ignored so
// printed codes always point at the production scanner.
type Codec struct {
	BaseURL string
	now     func() time.Time
}

func NewCodec(baseURL string) *Codec {
	return &Codec{
		BaseURL: strings.TrimRight(baseURL, "/"),
		now:     time.Now,
	}
}

// Encode builds a scan URL embedding an ordered, compact JSON payload for
// product, first-level and second-level codes. Extra fields are appended
// after the core keys in sorted order; an extra may only replace a core key
// when that key is named in override, otherwise Encode fails with
// ErrReservedKey.
func (c *Codec) Encode(codeType CodeType, product ProductInfo, batch BatchInfo, extra map[string]any, override []string) (string, error) {
	entries := []payloadEntry{
		{"type", string(codeType)},
		{"product_id", product.ID},
		{"product_name", product.Name},
		{"sku_id", product.SKUID},
		{"batch_id", batch.ID},
		{"batch_no", batch.BatchNo},
		{"mfg_date", batch.MfgDate.Format("2006-01-02")},
		{"expiry_date", batch.ExpiryDate.Format("2006-01-02")},
		{"timestamp", c.now().Format("20060102150405")},
		{"image_url", nullable(product.ImageURL)},
		{"mrp", nullableFloat(product.MRP)},
		{"gtin", nullable(product.GTIN)},
		{"registration_no", nullable(product.RegistrationNo)},
		{"factory_name", nullable(batch.FactoryName)},
		{"qa_status", batch.QAStatus},
	}

	entries, err := mergeExtra(entries, extra, override)
	if err != nil {
		return "", err
	}

	js, err := marshalOrdered(entries)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/scan?data=%s", c.BaseURL, url.QueryEscape(js)), nil
}

// ShipperEntry is one constituent product line of a shipper payload
type ShipperEntry struct {
	ProductID   string     `json:"product_id"`
	ProductName string     `json:"product_name"`
	SKUID       string     `json:"sku_id"`
	GTIN        string     `json:"gtin"`
	Quantity    int        `json:"quantity"`
	MfgDate     *time.Time `json:"-"`
	ExpiryDate  *time.Time `json:"-"`
}

// ShipperInfo is the container snapshot embedded into a shipper payload
type ShipperInfo struct {
	Code          string
	Name          string
	TotalProducts int
	TotalQuantity int
	GrossWeight   float64
	Products      []ShipperEntry
}

// EncodeShipper builds the shipper payload. The JSON is embedded twice:
// URL-encoded in the data query parameter and verbatim after a # fragment,
// so scanners that mangle query strings can still recover the payload.
func (c *Codec) EncodeShipper(info ShipperInfo) (string, error) {
	products := make([]any, 0, len(info.Products))
	for _, p := range info.Products {
		products = append(products, orderedMap{
			{"product_id", p.ProductID},
			{"product_name", p.ProductName},
			{"sku_id", p.SKUID},
			{"gtin", nullable(p.GTIN)},
			{"quantity", p.Quantity},
			{"mfg_date", nullableDate(p.MfgDate)},
			{"expiry_date", nullableDate(p.ExpiryDate)},
		})
	}

	entries := []payloadEntry{
		{"type", string(CodeTypeShipper)},
		{"shipper_code", info.Code},
		{"shipper_name", info.Name},
		{"total_products", info.TotalProducts},
		{"total_quantity", info.TotalQuantity},
		{"gross_weight", info.GrossWeight},
		{"products", products},
		{"timestamp", c.now().Format(time.RFC3339)},
		{"scan_url", c.BaseURL + "/scan"},
	}

	js, err := marshalOrdered(entries)
	if err != nil {
		return "", err
	}

	scanURL := fmt.Sprintf("%s/scan?data=%s", c.BaseURL, url.QueryEscape(js))
	return scanURL + "#" + js, nil
}

// Payload is the structured result of decoding a scanned QR text
type Payload struct {
	Type      CodeType
	ProductID string
	BatchID   string
	Fields    map[string]any
	// Raw is the exact text the scanner produced, used for stored-code lookup
	Raw string
}

// Decode parses raw scanned text into a structured payload. It accepts both
// the full scan URL and a bare JSON payload, and enforces the presence of
// type, product_id and batch_id.
func (c *Codec) Decode(rawText string) (*Payload, error) {
	fields, raw, err := c.Parse(rawText)
	if err != nil {
		return nil, err
	}

	for _, key := range []string{"type", "product_id", "batch_id"} {
		if _, ok := fields[key]; !ok {
			return nil, ErrMissingFields
		}
	}

	p := &Payload{Fields: fields, Raw: raw}
	if s, ok := fields["type"].(string); ok {
		p.Type = CodeType(s)
	}
	if s, ok := fields["product_id"].(string); ok {
		p.ProductID = s
	}
	if s, ok := fields["batch_id"].(string); ok {
		p.BatchID = s
	}
	if p.Type == "" || p.ProductID == "" || p.BatchID == "" {
		return nil, ErrMissingFields
	}
	return p, nil
}

// Parse extracts and JSON-decodes the payload without validating required
// keys. Used by the public scan page, which displays whatever was scanned.
func (c *Codec) Parse(rawText string) (map[string]any, string, error) {
	raw := strings.TrimSpace(rawText)
	text := raw

	if strings.HasPrefix(text, "http") && strings.Contains(text, "/scan?data=") {
		u, err := url.Parse(text)
		if err != nil {
			return nil, "", ErrInvalidFormat
		}
		text = u.Query().Get("data")
		// shipper codes carry a verbatim copy in the fragment as a fallback
		if text == "" && u.Fragment != "" {
			text = u.Fragment
		}
	}

	var fields map[string]any
	if err := json.Unmarshal([]byte(text), &fields); err != nil {
		return nil, "", ErrInvalidFormat
	}
	return fields, raw, nil
}

type payloadEntry struct {
	key string
	val any
}

type orderedMap []payloadEntry

func (m orderedMap) MarshalJSON() ([]byte, error) {
	return []byte(mustMarshalOrdered(m)), nil
}

func mergeExtra(entries []payloadEntry, extra map[string]any, override []string) ([]payloadEntry, error) {
	if len(extra) == 0 {
		return entries, nil
	}

	allowed := make(map[string]bool, len(override))
	for _, k := range override {
		allowed[k] = true
	}
	reserved := make(map[string]int, len(coreKeys))
	for i, k := range coreKeys {
		reserved[k] = i
	}

	keys := make([]string, 0, len(extra))
	for k := range extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if idx, ok := reserved[k]; ok {
			if !allowed[k] {
				return nil, fmt.Errorf("%w: %s", ErrReservedKey, k)
			}
			entries[idx].val = extra[k]
			continue
		}
		entries = append(entries, payloadEntry{k, extra[k]})
	}
	return entries, nil
}

// marshalOrdered renders entries as a compact JSON object preserving
// insertion order, which the exact-string lookup of stored codes depends on.
func marshalOrdered(entries []payloadEntry) (string, error) {
	var b strings.Builder
	b.WriteByte('{')
	for i, e := range entries {
		if i > 0 {
			b.WriteByte(',')
		}
		k, err := json.Marshal(e.key)
		if err != nil {
			return "", err
		}
		v, err := json.Marshal(e.val)
		if err != nil {
			return "", err
		}
		b.Write(k)
		b.WriteByte(':')
		b.Write(v)
	}
	b.WriteByte('}')
	return b.String(), nil
}

func mustMarshalOrdered(entries []payloadEntry) string {
	s, err := marshalOrdered(entries)
	if err != nil {
		panic(err)
	}
	return s
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullableFloat(f float64) any {
	if f == 0 {
		return nil
	}
	return f
}

func nullableDate(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format("2006-01-02")
}
