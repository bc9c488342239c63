package application

import (
	"github.com/mateusmacedo/go-fleetseed/internal/fleet/export"
	"github.com/mateusmacedo/go-fleetseed/pkg/domain"
)

const (
	ExportScriptQueryName    = "ExportScript"
	ExportDocumentsQueryName = "ExportDocuments"
)

// ExportScriptData contém o banco de destino e o formato dos documentos do script.
type ExportScriptData struct {
	Database string
	Format   export.Format
}

type exportScriptQuery struct {
	data ExportScriptData
}

func (q exportScriptQuery) QueryName() string {
	return ExportScriptQueryName
}

func (q exportScriptQuery) Payload() ExportScriptData {
	return q.data
}

func NewExportScriptQuery(data ExportScriptData) domain.Query[ExportScriptData] {
	return exportScriptQuery{data: data}
}

type ExportDocumentsData struct {
	Format export.Format
}

type exportDocumentsQuery struct {
	data ExportDocumentsData
}

func (q exportDocumentsQuery) QueryName() string {
	return ExportDocumentsQueryName
}

func (q exportDocumentsQuery) Payload() ExportDocumentsData {
	return q.data
}

func NewExportDocumentsQuery(data ExportDocumentsData) domain.Query[ExportDocumentsData] {
	return exportDocumentsQuery{data: data}
}
