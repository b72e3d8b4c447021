package worker

import "time"

// Pool sizing for background jobs
const (
	DefaultWorkerCount = 1
	DefaultQueueSize   = 4
)

// DefaultCatalogResyncTimeout bounds a single catalog re-sync
const DefaultCatalogResyncTimeout = 30 * time.Second

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// Log messages for catalog re-sync
const (
	LogMsgCatalogResyncUnchanged = "Catalog re-sync found no changes"
	LogMsgCatalogResynced        = "Catalog re-synced, purging catalog cache"
	ErrMsgCatalogResyncFailed    = "catalog re-sync failed"
)
