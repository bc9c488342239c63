package export

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mateusmacedo/go-fleetseed/internal/fleet/domain"
)

// ScriptEmitter gera o script mongosh de carga: seleção do banco seguida
// de um insertMany por coleção, na ordem de Collections.
type ScriptEmitter struct {
	serializer Serializer
	database   string
}

func NewScriptEmitter(serializer Serializer, database string) *ScriptEmitter {
	return &ScriptEmitter{serializer: serializer, database: database}
}

// Documents serializa todas as coleções do repositório.
func Documents(serializer Serializer, reader domain.FleetReader) ([]Document, error) {
	collections := Collections(reader)
	documents := make([]Document, 0, len(collections))
	for _, collection := range collections {
		body, err := serializer.Marshal(collection)
		if err != nil {
			return nil, err
		}
		documents = append(documents, Document{Name: collection.Name, Format: serializer.Format(), Body: body})
	}
	return documents, nil
}

func (e *ScriptEmitter) Emit(reader domain.FleetReader) (string, error) {
	if strings.TrimSpace(e.database) == "" {
		return "", fmt.Errorf("database name is required")
	}

	documents, err := Documents(e.serializer, reader)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "use %s\n", e.database)
	for _, doc := range documents {
		argument, err := e.insertArgument(doc)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "db.%s.insertMany(%s)\n", doc.Name, argument)
	}
	return b.String(), nil
}

// insertArgument embute o documento como está; Extended JSON passa por
// EJSON.parse para que $date e $numberDecimal virem tipos nativos.
func (e *ScriptEmitter) insertArgument(doc Document) (string, error) {
	switch doc.Format {
	case FormatExtJSON:
		quoted, err := json.Marshal(string(doc.Body))
		if err != nil {
			return "", fmt.Errorf("quote %s: %w", doc.Name, err)
		}
		return "EJSON.parse(" + string(quoted) + ")", nil
	default:
		return string(doc.Body), nil
	}
}
