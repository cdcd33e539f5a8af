package minio

import (
	"detection-srv/internal/analysis"
	pkgminio "detection-srv/pkg/minio"
	"detection-srv/pkg/log"
)

type implRepository struct {
	l       log.Logger
	storage pkgminio.IStorage
}

var _ analysis.Repository = &implRepository{}

func New(l log.Logger, storage pkgminio.IStorage) analysis.Repository {
	return &implRepository{
		l:       l,
		storage: storage,
	}
}
