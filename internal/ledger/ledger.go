package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ilramdhan/cmms.ilramdhan.dev/internal/storage"
	"github.com/ilramdhan/cmms.ilramdhan.dev/pkg/metadata"
	"github.com/ilramdhan/cmms.ilramdhan.dev/pkg/models"
)

// Collection keys in the persisted store, one JSON array per key.
const (
	keyAssets      = "assets"
	keyWorkOrders  = "work_orders"
	keyParts       = "parts"
	keyTechnicians = "technicians"
	keyActivities  = "activities"
	keySchedules   = "pm_schedules"
)

const dateLayout = "2006-01-02"

const maxActivityEntries = 100

type Config struct {
	Actor             string
	NotificationTTL   time.Duration
	LowStockThreshold int
}

// Ledger holds the canonical collections and every mutation operation
// over them. All state is guarded by one mutex: callers are expected to
// be a single view layer, but the notification expiry timer fires on its
// own goroutine.
type Ledger struct {
	mu    sync.Mutex
	store *storage.Store
	log   *zap.Logger
	cfg   Config

	now   func() time.Time
	newID func(prefix string) string

	assets        []models.Asset
	workOrders    []models.WorkOrder
	parts         []models.Part
	technicians   []models.Technician
	schedules     []models.PMSchedule
	activities    []models.ActivityLog
	notifications []models.Notification
}

func New(store *storage.Store, cfg Config, log *zap.Logger) (*Ledger, error) {
	if store == nil {
		return nil, errors.New("ledger requires a store")
	}
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.Actor == "" {
		cfg.Actor = "Admin"
	}
	if cfg.NotificationTTL <= 0 {
		cfg.NotificationTTL = 3 * time.Second
	}
	if cfg.LowStockThreshold <= 0 {
		cfg.LowStockThreshold = 10
	}

	l := &Ledger{
		store: store,
		log:   log,
		cfg:   cfg,
		now:   time.Now,
		newID: func(prefix string) string {
			return fmt.Sprintf("%s-%s", prefix, strings.SplitN(uuid.NewString(), "-", 2)[0])
		},
	}

	if err := l.load(); err != nil {
		return nil, err
	}

	return l, nil
}

// load fills every collection from the store, seeding the compiled-in
// defaults for keys that are absent or corrupt. Corruption is reported
// on the diagnostic log only, never to the caller (the observable
// behavior is the same fallback either way).
func (l *Ledger) load() error {
	now := l.now()
	l.assets = loadOrSeed(l, keyAssets, defaultAssets(now))
	l.workOrders = loadOrSeed(l, keyWorkOrders, defaultWorkOrders(now))
	l.parts = loadOrSeed(l, keyParts, defaultParts())
	l.technicians = loadOrSeed(l, keyTechnicians, defaultTechnicians())
	l.schedules = loadOrSeed(l, keySchedules, defaultSchedules(now))
	l.activities = loadOrSeed(l, keyActivities, defaultActivities(now))
	return nil
}

// readCollection decodes one persisted collection. It distinguishes a
// key that was never written (storage.ErrNotFound) from one that is
// present but undecodable (*storage.CorruptError).
func readCollection[T any](store *storage.Store, key string) ([]T, error) {
	raw, err := store.Get(key)
	if err != nil {
		return nil, err
	}

	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, &storage.CorruptError{Key: key, Err: err}
	}

	return records, nil
}

// loadOrSeed reads a collection, falling back to the seed dataset when
// nothing usable is stored. First-load seeds are written back so the
// next open reads them from the store.
func loadOrSeed[T any](l *Ledger, key string, seed []T) []T {
	records, err := readCollection[T](l.store, key)
	if err == nil {
		return records
	}

	if errors.Is(err, storage.ErrNotFound) {
		if perr := l.persist(key, seed); perr != nil {
			l.log.Warn("could not write seed data", zap.String("key", key), zap.Error(perr))
		}
		return seed
	}

	l.log.Warn("falling back to seed data", zap.String("key", key), zap.Error(err))
	return seed
}

func (l *Ledger) persist(key string, collection any) error {
	raw, err := json.Marshal(collection)
	if err != nil {
		return fmt.Errorf("could not serialize %s: %w", key, err)
	}
	return l.store.Put(key, raw)
}

// commit persists one mutated collection, appends its activity entry and
// enqueues its notification. Every committed mutation goes through here
// exactly once.
func (l *Ledger) commit(key string, collection any, action, toast string, severity metadata.Severity) error {
	if err := l.persist(key, collection); err != nil {
		return err
	}
	l.appendActivity(action, severity)
	l.pushNotification(toast, severity)
	return nil
}

func (l *Ledger) today() string {
	return l.now().Format(dateLayout)
}

// Reset wipes the store, rewrites the seed dataset and reloads the
// in-memory collections.
func (l *Ledger) Reset() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	seed := map[string]any{
		keyAssets:      defaultAssets(now),
		keyWorkOrders:  defaultWorkOrders(now),
		keyParts:       defaultParts(),
		keyTechnicians: defaultTechnicians(),
		keySchedules:   defaultSchedules(now),
		keyActivities:  defaultActivities(now),
	}

	encoded := make(map[string][]byte, len(seed))
	for key, collection := range seed {
		raw, err := json.Marshal(collection)
		if err != nil {
			return fmt.Errorf("could not serialize %s: %w", key, err)
		}
		encoded[key] = raw
	}

	if err := l.store.Reset(encoded); err != nil {
		return err
	}

	return l.load()
}
