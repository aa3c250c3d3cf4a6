package store

import "github.com/josephgoksu/TaskDeck/models"

// Snapshot is one complete, self-consistent replacement of a subscribed
// view's contents. FromCache reports whether the snapshot was served from the
// local cache rather than a confirmed round-trip to the backing store.
type Snapshot struct {
	Tasks     []models.Task
	FromCache bool
}

// Unsubscribe stops further snapshot delivery and releases the underlying
// stream. Callers must invoke it on teardown; a dropped disposer leaks the
// subscription for the process lifetime.
type Unsubscribe func()

// Batch stages partial updates and deletes for a single atomic commit.
// Staged writes are invisible until Commit; a failed commit applies nothing.
type Batch interface {
	// Update stages a partial field update for the task with the given id.
	Update(id string, fields map[string]interface{})

	// Delete stages removal of the task with the given id.
	Delete(id string)

	// Commit applies all staged writes atomically. It returns an error if
	// any staged update references an unknown id or the save fails; in
	// either case no staged write is applied.
	Commit() error
}

// TaskStore defines the document-store contract for task persistence:
// create with store-assigned id, partial update by id, delete, filtered
// queries, batched writes, and real-time subscription to filtered snapshots.
type TaskStore interface {
	// Initialize configures the store with backend-specific settings such
	// as file path and data format. It must be called before any other
	// store operation.
	Initialize(config map[string]string) error

	// CreateTask adds a new task to the store, assigning its id.
	// It returns the created task or an error if the operation fails.
	CreateTask(task models.Task) (models.Task, error)

	// GetTask retrieves a task by its unique identifier.
	GetTask(id string) (models.Task, error)

	// UpdateTask applies a partial update to the task with the given id.
	// The 'updates' map contains field names to their new values; fields
	// not present in the map are left untouched. It returns the updated
	// task, or a not-found error for an unknown id.
	UpdateTask(id string, updates map[string]interface{}) (models.Task, error)

	// DeleteTask removes a task from the store by its unique identifier.
	DeleteTask(id string) error

	// ListTasks retrieves tasks, optionally filtered and sorted.
	// If filterFn is nil, all tasks are returned. If sortFn is nil, the
	// tasks are returned in their natural order.
	ListTasks(filterFn func(models.Task) bool, sortFn func([]models.Task) []models.Task) ([]models.Task, error)

	// Subscribe registers a callback for the filtered change-stream. The
	// initial snapshot is delivered before Subscribe returns; subsequent
	// snapshots follow every committed change, in the order the store
	// produces them. Errors are reported to onError and never panic across
	// the subscription boundary. The store does not auto-reconnect.
	Subscribe(filterFn func(models.Task) bool, onSnapshot func(Snapshot), onError func(error)) (Unsubscribe, error)

	// NewBatch returns an empty batch bound to this store.
	NewBatch() Batch

	// Close releases any resources held by the store, such as file locks
	// and active subscriptions.
	Close() error
}
