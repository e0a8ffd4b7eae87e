package audit

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/agenda-scheduler/internal/models"
)

// Store persiste e lista eventos de auditoria.
type Store interface {
	Log(ctx context.Context, ev Event) error
	List(ctx context.Context, f Filter) ([]models.AuditLog, error)
}

type Filter struct {
	Action  string
	Entity  string
	ActorID *uint
	Limit   int
}

const defaultLimit = 100

func (f Filter) limit() int {
	if f.Limit <= 0 || f.Limit > 500 {
		return defaultLimit
	}
	return f.Limit
}

func toModel(ev Event) models.AuditLog {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	return models.AuditLog{
		ActorID:  ev.ActorID,
		Action:   ev.Action,
		Entity:   ev.Entity,
		EntityID: ev.EntityID,
		Metadata: metaJSON,
	}
}

// ===============================
// Gorm
// ===============================

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(ctx context.Context, ev Event) error {
	row := toModel(ev)
	return l.db.WithContext(ctx).Create(&row).Error
}

func (l *Logger) List(ctx context.Context, f Filter) ([]models.AuditLog, error) {
	q := l.db.WithContext(ctx).Model(&models.AuditLog{})

	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.Entity != "" {
		q = q.Where("entity = ?", f.Entity)
	}
	if f.ActorID != nil {
		q = q.Where("actor_id = ?", *f.ActorID)
	}

	var logs []models.AuditLog
	if err := q.
		Order("id DESC").
		Limit(f.limit()).
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// ===============================
// Memória
// ===============================

type MemoryStore struct {
	mu   sync.RWMutex
	rows []models.AuditLog
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Log(_ context.Context, ev Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	row := toModel(ev)
	row.ID = uint(len(m.rows) + 1)
	row.CreatedAt = now()
	m.rows = append(m.rows, row)
	return nil
}

func (m *MemoryStore) List(_ context.Context, f Filter) ([]models.AuditLog, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []models.AuditLog{}
	for _, r := range m.rows {
		if f.Action != "" && r.Action != f.Action {
			continue
		}
		if f.Entity != "" && r.Entity != f.Entity {
			continue
		}
		if f.ActorID != nil && (r.ActorID == nil || *r.ActorID != *f.ActorID) {
			continue
		}
		out = append(out, r)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if len(out) > f.limit() {
		out = out[:f.limit()]
	}
	return out, nil
}
