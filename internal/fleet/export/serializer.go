package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mateusmacedo/go-fleetseed/internal/fleet/domain"
)

type Format string

const (
	FormatJSON    Format = "json"
	FormatExtJSON Format = "extjson"
)

func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, FormatExtJSON:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown export format %q", s)
	}
}

// Serializer converte uma coleção em um documento de texto.
type Serializer interface {
	Format() Format
	Marshal(collection Collection) ([]byte, error)
}

func NewSerializer(format Format) (Serializer, error) {
	switch format {
	case FormatJSON:
		return JSONSerializer{}, nil
	case FormatExtJSON:
		return ExtJSONSerializer{}, nil
	default:
		return nil, fmt.Errorf("unknown export format %q", format)
	}
}

// JSONSerializer gera JSON indentado com os nomes de campo das entidades.
// TotalPrice das transações sai como número com duas casas.
type JSONSerializer struct{}

type jsonTransaction struct {
	domain.Transaction
	TotalPrice json.Number `json:"TotalPrice"`
}

func (JSONSerializer) Format() Format { return FormatJSON }

func (JSONSerializer) Marshal(collection Collection) ([]byte, error) {
	items := collection.Items
	if transactions, ok := items.([]domain.Transaction); ok {
		docs := make([]jsonTransaction, len(transactions))
		for i, t := range transactions {
			docs[i] = jsonTransaction{
				Transaction: t,
				TotalPrice:  json.Number(t.TotalPrice().StringFixed(domain.TotalPricePlaces)),
			}
		}
		items = docs
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(items); err != nil {
		return nil, fmt.Errorf("marshal %s: %w", collection.Name, err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// ExtJSONSerializer gera MongoDB Extended JSON (modo relaxed): datas como $date
// e TotalPrice como $numberDecimal.
type ExtJSONSerializer struct{}

type bsonTransaction struct {
	domain.Transaction `bson:",inline"`
	TotalPrice         primitive.Decimal128 `bson:"TotalPrice"`
}

func (ExtJSONSerializer) Format() Format { return FormatExtJSON }

// Marshal serializa item a item: o bson só aceita documentos no nível raiz.
func (ExtJSONSerializer) Marshal(collection Collection) ([]byte, error) {
	docs, err := bsonDocuments(collection.Items)
	if err != nil {
		return nil, fmt.Errorf("marshal %s: %w", collection.Name, err)
	}

	var buf bytes.Buffer
	buf.WriteString("[")
	for i, doc := range docs {
		if i > 0 {
			buf.WriteString(",")
		}
		encoded, err := bson.MarshalExtJSONIndent(doc, false, false, "  ", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal %s: %w", collection.Name, err)
		}
		buf.WriteString("\n  ")
		buf.Write(encoded)
	}
	if len(docs) > 0 {
		buf.WriteString("\n")
	}
	buf.WriteString("]")
	return buf.Bytes(), nil
}

func bsonDocuments(items interface{}) ([]interface{}, error) {
	switch v := items.(type) {
	case []domain.Employee:
		return toAny(v), nil
	case []domain.Bus:
		return toAny(v), nil
	case []*domain.Client:
		return toAny(v), nil
	case []*domain.Route:
		return toAny(v), nil
	case []domain.Ticket:
		return toAny(v), nil
	case []domain.BusStop:
		return toAny(v), nil
	case []domain.Transaction:
		docs := make([]interface{}, len(v))
		for i, t := range v {
			total, err := primitive.ParseDecimal128(t.TotalPrice().StringFixed(domain.TotalPricePlaces))
			if err != nil {
				return nil, err
			}
			docs[i] = bsonTransaction{Transaction: t, TotalPrice: total}
		}
		return docs, nil
	default:
		return nil, fmt.Errorf("unsupported collection type %T", items)
	}
}

func toAny[T any](items []T) []interface{} {
	out := make([]interface{}, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}
