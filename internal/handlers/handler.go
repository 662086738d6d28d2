package handlers

import (
	"toolcrib/internal/importer"
	"toolcrib/internal/storage"
	"toolcrib/internal/store"

	"gorm.io/gorm"
)

// Handler bundles the stores behind the HTTP surface. The DB handle is
// injected here once instead of living in a package-level singleton.
type Handler struct {
	records  *store.RecordStore
	users    *store.UserStore
	importer *importer.Importer
	saver    *storage.Saver
}

func New(db *gorm.DB, saver *storage.Saver) *Handler {
	return &Handler{
		records:  store.NewRecordStore(db),
		users:    store.NewUserStore(db),
		importer: importer.New(db),
		saver:    saver,
	}
}
