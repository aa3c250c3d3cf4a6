package store

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/fsnotify/fsnotify"
	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/josephgoksu/TaskDeck/models"
	"github.com/josephgoksu/TaskDeck/types"
	yaml "gopkg.in/yaml.v3"
)

const (
	defaultDataFile   = "tasks.json"
	dataFileKey       = "dataFile"
	dataFileFormatKey = "dataFileFormat"
	defaultDataFormat = "json"
	formatJSON        = "json"
	formatYAML        = "yaml"
	formatTOML        = "toml"
	checksumSuffix    = ".checksum"

	// eventBuffer bounds the snapshot dispatch queue. Dispatch is a single
	// goroutine so snapshot order per subscription matches commit order.
	eventBuffer = 16

	// selfWriteWindow suppresses filesystem watch events fired by our own
	// atomic rename; local commits already published their snapshot.
	selfWriteWindow = 500 * time.Millisecond
)

// FileTaskStore implements the TaskStore interface using a file backend.
// It supports JSON, YAML, and TOML formats, uses file-level locking, and
// fans committed changes out to subscribers as full snapshots. A filesystem
// watcher picks up writes from other processes and re-delivers.
type FileTaskStore struct {
	filePath string
	tasks    map[string]models.Task
	flk      *flock.Flock
	format   string

	subMu     sync.Mutex
	subs      map[int]*subscriber
	nextSubID int

	events    chan snapshotEvent
	stopCh    chan struct{}
	wg        sync.WaitGroup
	streamOne sync.Once
	watcher   *fsnotify.Watcher

	// confirmed flips to true after the first successful save; snapshots
	// built before then are served from the cold-loaded cache.
	confirmed bool
	lastSave  time.Time
}

type subscriber struct {
	filter     func(models.Task) bool
	onSnapshot func(Snapshot)
	onError    func(error)
}

type snapshotEvent struct {
	tasks     []models.Task
	fromCache bool
	target    int // subscriber id, or -1 for all
}

// NewFileTaskStore creates a new instance of FileTaskStore.
// It does not initialize the store; Initialize must be called separately.
func NewFileTaskStore() *FileTaskStore {
	return &FileTaskStore{
		tasks:  make(map[string]models.Task),
		subs:   make(map[int]*subscriber),
		events: make(chan snapshotEvent, eventBuffer),
		stopCh: make(chan struct{}),
	}
}

// Initialize configures the FileTaskStore. It expects a 'dataFile' key in the
// config map specifying the path to the data file, defaulting to 'tasks.json'
// in the current working directory. Existing tasks are loaded under a file
// lock.
func (s *FileTaskStore) Initialize(config map[string]string) error {
	if val, ok := config[dataFileKey]; ok && val != "" {
		s.filePath = val
	} else {
		s.filePath = defaultDataFile
	}

	if val, ok := config[dataFileFormatKey]; ok && val != "" {
		formatLower := strings.ToLower(val)
		switch formatLower {
		case formatJSON, formatYAML, formatTOML:
			s.format = formatLower
		default:
			return fmt.Errorf("unsupported dataFileFormat: %s. Supported formats are json, yaml, toml", val)
		}
	} else {
		s.format = defaultDataFormat
	}

	if s.filePath == defaultDataFile && s.format != formatJSON {
		ext := filepath.Ext(s.filePath)
		s.filePath = strings.TrimSuffix(s.filePath, ext) + "." + s.format
	}

	dir := filepath.Dir(s.filePath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	s.flk = flock.New(s.filePath)

	locked, err := s.flk.TryLock()
	if err != nil {
		return fmt.Errorf("failed to acquire initial lock for %s: %w", s.filePath, err)
	}
	if !locked {
		if err := s.flk.Lock(); err != nil {
			return fmt.Errorf("failed to acquire blocking initial lock for %s: %w", s.filePath, err)
		}
	}
	defer func() { _ = s.flk.Unlock() }()

	s.tasks = make(map[string]models.Task)
	return s.loadTasksFromFileInternal()
}

// calculateChecksum computes the SHA256 checksum of the given data.
func calculateChecksum(data []byte) string {
	hasher := sha256.New()
	hasher.Write(data)
	return hex.EncodeToString(hasher.Sum(nil))
}

// loadTasksFromFileInternal reads tasks from the file, verifies checksum, and
// unmarshals. The caller must hold the file lock.
func (s *FileTaskStore) loadTasksFromFileInternal() error {
	checksumFilePath := s.filePath + checksumSuffix

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.tasks = make(map[string]models.Task)
			_ = os.Remove(checksumFilePath)
			f, createErr := os.OpenFile(s.filePath, os.O_CREATE|os.O_RDWR, 0o644)
			if createErr != nil {
				return fmt.Errorf("failed to create data file %s: %w", s.filePath, createErr)
			}
			_ = f.Close()
			if err := os.WriteFile(checksumFilePath, []byte(calculateChecksum([]byte{})), 0o644); err != nil {
				fmt.Printf("Warning: could not write initial checksum file %s: %v\n", checksumFilePath, err)
			}
			return nil
		}
		return fmt.Errorf("failed to read data file %s: %w", s.filePath, err)
	}

	if _, err := os.Stat(checksumFilePath); err == nil {
		expectedChecksumBytes, readErr := os.ReadFile(checksumFilePath)
		if readErr != nil {
			return fmt.Errorf("failed to read checksum file %s: %w", checksumFilePath, readErr)
		}
		expectedChecksum := strings.TrimSpace(string(expectedChecksumBytes))
		actualChecksum := calculateChecksum(data)

		if actualChecksum != expectedChecksum {
			return fmt.Errorf("checksum mismatch for %s - expected %s, got %s - file is corrupt or tampered", s.filePath, expectedChecksum, actualChecksum)
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("error checking checksum file %s: %w", checksumFilePath, err)
	}

	if len(data) == 0 {
		_ = os.WriteFile(checksumFilePath, []byte(calculateChecksum([]byte{})), 0o644)
		s.tasks = make(map[string]models.Task)
		return nil
	}

	var taskList models.TaskList
	switch s.format {
	case formatJSON:
		if err := json.Unmarshal(data, &taskList); err != nil {
			return fmt.Errorf("failed to unmarshal JSON from %s: %w", s.filePath, err)
		}
	case formatYAML:
		if err := yaml.Unmarshal(data, &taskList); err != nil {
			return fmt.Errorf("failed to unmarshal YAML from %s: %w", s.filePath, err)
		}
	case formatTOML:
		if err := toml.Unmarshal(data, &taskList); err != nil {
			return fmt.Errorf("failed to unmarshal TOML from %s: %w", s.filePath, err)
		}
	default:
		return fmt.Errorf("unsupported data format for loading: %s", s.format)
	}

	s.tasks = make(map[string]models.Task, len(taskList.Tasks))
	for _, task := range taskList.Tasks {
		s.tasks[task.ID] = task
	}
	return nil
}

// saveTasksToFileInternal writes tasks to file, then writes its checksum.
// The caller must hold the file lock.
func (s *FileTaskStore) saveTasksToFileInternal() error {
	taskList := models.TaskList{
		Tasks:      make([]models.Task, 0, len(s.tasks)),
		TotalCount: len(s.tasks),
	}
	for _, task := range s.tasks {
		taskList.Tasks = append(taskList.Tasks, task)
	}

	var marshaledData []byte
	var err error

	switch s.format {
	case formatJSON:
		marshaledData, err = json.MarshalIndent(taskList, "", "  ")
	case formatYAML:
		marshaledData, err = yaml.Marshal(taskList)
	case formatTOML:
		buf := new(bytes.Buffer)
		if encodeErr := toml.NewEncoder(buf).Encode(taskList); encodeErr == nil {
			marshaledData = buf.Bytes()
		} else {
			err = fmt.Errorf("failed to marshal TOML: %w", encodeErr)
		}
	default:
		return fmt.Errorf("unsupported data format for saving: %s", s.format)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal tasks to %s: %w", s.format, err)
	}

	tempFilePath := s.filePath + ".tmp"
	checksumFilePath := s.filePath + checksumSuffix
	tempChecksumFilePath := checksumFilePath + ".tmp"

	defer func() { _ = os.Remove(tempFilePath) }()
	defer func() { _ = os.Remove(tempChecksumFilePath) }()

	if err := os.WriteFile(tempFilePath, marshaledData, 0o644); err != nil {
		return fmt.Errorf("failed to write to temporary data file %s: %w", tempFilePath, err)
	}

	actualChecksum := calculateChecksum(marshaledData)
	if err := os.WriteFile(tempChecksumFilePath, []byte(actualChecksum), 0o644); err != nil {
		return fmt.Errorf("failed to write to temporary checksum file %s: %w", tempChecksumFilePath, err)
	}

	if err := os.Rename(tempFilePath, s.filePath); err != nil {
		return fmt.Errorf("failed to rename temporary data file %s to %s: %w", tempFilePath, s.filePath, err)
	}
	if err := os.Rename(tempChecksumFilePath, checksumFilePath); err != nil {
		return fmt.Errorf("data file %s updated, but failed to update checksum file %s: %w - store may be inconsistent", s.filePath, checksumFilePath, err)
	}

	s.confirmed = true
	s.lastSave = time.Now()
	return nil
}

// generateID creates a new universally unique identifier string.
func generateID() string {
	return uuid.NewString()
}

// notFoundErr builds the not-found condition propagated unchanged to callers.
func notFoundErr(id string) error {
	return types.NewTaskError(types.CodeNotFound, fmt.Sprintf("task with ID '%s' not found", id), nil)
}

// CreateTask adds a new task to the store, assigning its id, and publishes a
// snapshot to subscribers.
func (s *FileTaskStore) CreateTask(task models.Task) (models.Task, error) {
	if err := s.flk.Lock(); err != nil {
		return models.Task{}, fmt.Errorf("could not lock file for create: %w", err)
	}
	defer func() { _ = s.flk.Unlock() }()

	// Reload state from disk so we work with the latest version even if
	// another process wrote between our operations.
	if err := s.loadTasksFromFileInternal(); err != nil {
		return models.Task{}, fmt.Errorf("failed to reload tasks before create: %w", err)
	}

	if task.ID == "" {
		task.ID = generateID()
	} else if _, exists := s.tasks[task.ID]; exists {
		return models.Task{}, fmt.Errorf("task with ID '%s' already exists", task.ID)
	}

	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now().UTC()
	}

	if err := models.ValidateStruct(task); err != nil {
		return models.Task{}, fmt.Errorf("validation failed for new task: %w", err)
	}

	s.tasks[task.ID] = task

	if err := s.saveTasksToFileInternal(); err != nil {
		_ = s.loadTasksFromFileInternal()
		return models.Task{}, fmt.Errorf("failed to save new task: %w", err)
	}

	s.publishLocked(false)
	return task, nil
}

// GetTask retrieves a task by its unique identifier.
func (s *FileTaskStore) GetTask(id string) (models.Task, error) {
	if err := s.flk.Lock(); err != nil {
		return models.Task{}, fmt.Errorf("failed to acquire lock for GetTask: %w", err)
	}
	defer func() { _ = s.flk.Unlock() }()

	if err := s.loadTasksFromFileInternal(); err != nil {
		return models.Task{}, fmt.Errorf("failed to load tasks for GetTask: %w", err)
	}

	task, ok := s.tasks[id]
	if !ok {
		return models.Task{}, notFoundErr(id)
	}
	return task, nil
}

// UpdateTask applies a partial field update to an existing task and publishes
// a snapshot to subscribers.
func (s *FileTaskStore) UpdateTask(id string, updates map[string]interface{}) (models.Task, error) {
	if err := s.flk.Lock(); err != nil {
		return models.Task{}, fmt.Errorf("could not lock file for update: %w", err)
	}
	defer func() { _ = s.flk.Unlock() }()

	if err := s.loadTasksFromFileInternal(); err != nil {
		return models.Task{}, fmt.Errorf("failed to reload tasks before update: %w", err)
	}

	task, exists := s.tasks[id]
	if !exists {
		return models.Task{}, notFoundErr(id)
	}
	originalTask := task

	if err := applyUpdates(&task, updates); err != nil {
		return models.Task{}, err
	}

	if err := models.ValidateStruct(task); err != nil {
		return models.Task{}, fmt.Errorf("validation failed for updated task: %w", err)
	}

	s.tasks[id] = task

	if err := s.saveTasksToFileInternal(); err != nil {
		s.tasks[id] = originalTask
		return models.Task{}, fmt.Errorf("failed to save updated task: %w", err)
	}

	s.publishLocked(false)
	return task, nil
}

// applyUpdates sets the given field values on the task. Field names follow
// the persisted (JSON) form. Values absent from the map leave the field
// untouched; an explicit "clear" cannot be expressed.
func applyUpdates(task *models.Task, updates map[string]interface{}) error {
	for key, value := range updates {
		switch key {
		case "title":
			v, ok := value.(string)
			if !ok {
				return fmt.Errorf("invalid type for title: %T", value)
			}
			task.Title = v
		case "description":
			v, ok := value.(string)
			if !ok {
				return fmt.Errorf("invalid type for description: %T", value)
			}
			task.Description = v
		case "dueDate":
			v, err := asTime(value)
			if err != nil {
				return fmt.Errorf("invalid value for dueDate: %w", err)
			}
			task.DueDate = v
		case "reminderTime":
			v, err := asTime(value)
			if err != nil {
				return fmt.Errorf("invalid value for reminderTime: %w", err)
			}
			task.ReminderTime = &v
		case "priority":
			switch v := value.(type) {
			case models.TaskPriority:
				task.Priority = v
			case string:
				task.Priority = models.TaskPriority(v)
			default:
				return fmt.Errorf("invalid type for priority: %T", value)
			}
		case "isPinned":
			v, ok := value.(bool)
			if !ok {
				return fmt.Errorf("invalid type for isPinned: %T", value)
			}
			task.IsPinned = v
		case "isCompleted":
			v, ok := value.(bool)
			if !ok {
				return fmt.Errorf("invalid type for isCompleted: %T", value)
			}
			task.IsCompleted = v
		case "completedAt":
			v, err := asTime(value)
			if err != nil {
				return fmt.Errorf("invalid value for completedAt: %w", err)
			}
			task.CompletedAt = &v
		case "completionNote":
			v, ok := value.(string)
			if !ok {
				return fmt.Errorf("invalid type for completionNote: %T", value)
			}
			task.CompletionNote = v
		default:
			return fmt.Errorf("unknown field '%s' in update", key)
		}
	}
	return nil
}

// asTime accepts the time representations callers are likely to hand us.
func asTime(value interface{}) (time.Time, error) {
	switch v := value.(type) {
	case time.Time:
		return v, nil
	case *time.Time:
		if v == nil {
			return time.Time{}, fmt.Errorf("nil time pointer")
		}
		return *v, nil
	case string:
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return time.Time{}, err
		}
		return t, nil
	default:
		return time.Time{}, fmt.Errorf("unsupported time type %T", value)
	}
}

// DeleteTask removes a task from the store and publishes a snapshot.
func (s *FileTaskStore) DeleteTask(id string) error {
	if err := s.flk.Lock(); err != nil {
		return fmt.Errorf("could not lock file for delete: %w", err)
	}
	defer func() { _ = s.flk.Unlock() }()

	if err := s.loadTasksFromFileInternal(); err != nil {
		return fmt.Errorf("failed to reload tasks before delete: %w", err)
	}

	if _, exists := s.tasks[id]; !exists {
		return notFoundErr(id)
	}
	delete(s.tasks, id)

	if err := s.saveTasksToFileInternal(); err != nil {
		_ = s.loadTasksFromFileInternal()
		return fmt.Errorf("failed to save after delete: %w", err)
	}

	s.publishLocked(false)
	return nil
}

// ListTasks retrieves tasks, optionally filtered and sorted.
func (s *FileTaskStore) ListTasks(filterFn func(models.Task) bool, sortFn func([]models.Task) []models.Task) ([]models.Task, error) {
	if err := s.flk.Lock(); err != nil {
		return nil, fmt.Errorf("failed to acquire lock for ListTasks: %w", err)
	}
	defer func() { _ = s.flk.Unlock() }()

	if err := s.loadTasksFromFileInternal(); err != nil {
		return nil, fmt.Errorf("failed to load tasks for ListTasks: %w", err)
	}

	tasks := make([]models.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		if filterFn == nil || filterFn(task) {
			tasks = append(tasks, task)
		}
	}
	if sortFn != nil {
		tasks = sortFn(tasks)
	}
	return tasks, nil
}

// Subscribe registers a snapshot callback for the filtered change-stream.
// The initial snapshot is queued before Subscribe returns and is flagged as
// cache-served until a local commit has confirmed a round-trip.
func (s *FileTaskStore) Subscribe(filterFn func(models.Task) bool, onSnapshot func(Snapshot), onError func(error)) (Unsubscribe, error) {
	if onSnapshot == nil {
		return nil, fmt.Errorf("subscribe requires a snapshot callback")
	}
	s.startStream()

	if err := s.flk.Lock(); err != nil {
		return nil, fmt.Errorf("failed to acquire lock for Subscribe: %w", err)
	}
	if err := s.loadTasksFromFileInternal(); err != nil {
		_ = s.flk.Unlock()
		return nil, fmt.Errorf("failed to load tasks for Subscribe: %w", err)
	}
	tasks := s.copyTasksLocked()
	fromCache := !s.confirmed
	_ = s.flk.Unlock()

	s.subMu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subs[id] = &subscriber{filter: filterFn, onSnapshot: onSnapshot, onError: onError}
	s.subMu.Unlock()

	s.enqueue(snapshotEvent{tasks: tasks, fromCache: fromCache, target: id})

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}, nil
}

// NewBatch returns an empty batch bound to this store.
func (s *FileTaskStore) NewBatch() Batch {
	return &fileBatch{store: s}
}

// Close stops the change-stream and releases the filesystem watcher.
func (s *FileTaskStore) Close() error {
	s.subMu.Lock()
	s.subs = make(map[int]*subscriber)
	s.subMu.Unlock()

	select {
	case <-s.stopCh:
	default:
		close(s.stopCh)
	}
	if s.watcher != nil {
		_ = s.watcher.Close()
	}
	s.wg.Wait()
	return nil
}

// copyTasksLocked snapshots the in-memory task set. Caller holds the lock.
func (s *FileTaskStore) copyTasksLocked() []models.Task {
	tasks := make([]models.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		tasks = append(tasks, task)
	}
	return tasks
}

// publishLocked queues a snapshot for all subscribers. Caller holds the lock.
func (s *FileTaskStore) publishLocked(fromCache bool) {
	s.enqueue(snapshotEvent{tasks: s.copyTasksLocked(), fromCache: fromCache, target: -1})
}

func (s *FileTaskStore) enqueue(ev snapshotEvent) {
	select {
	case s.events <- ev:
	case <-s.stopCh:
	}
}

// startStream launches the dispatch goroutine and the filesystem watcher on
// first use.
func (s *FileTaskStore) startStream() {
	s.streamOne.Do(func() {
		s.wg.Add(1)
		go s.dispatchLoop()

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			// Local commits still publish; only external writers go unseen.
			return
		}
		if err := watcher.Add(filepath.Dir(s.filePath)); err != nil {
			_ = watcher.Close()
			return
		}
		s.watcher = watcher
		s.wg.Add(1)
		go s.watchLoop()
	})
}

// dispatchLoop fans snapshot events out to subscribers, preserving order.
func (s *FileTaskStore) dispatchLoop() {
	defer s.wg.Done()
	for {
		select {
		case ev := <-s.events:
			s.deliver(ev)
		case <-s.stopCh:
			return
		}
	}
}

func (s *FileTaskStore) deliver(ev snapshotEvent) {
	s.subMu.Lock()
	targets := make([]*subscriber, 0, len(s.subs))
	for id, sub := range s.subs {
		if ev.target == -1 || ev.target == id {
			targets = append(targets, sub)
		}
	}
	s.subMu.Unlock()

	for _, sub := range targets {
		filtered := make([]models.Task, 0, len(ev.tasks))
		for _, task := range ev.tasks {
			if sub.filter == nil || sub.filter(task) {
				filtered = append(filtered, task)
			}
		}
		sub.onSnapshot(Snapshot{Tasks: filtered, FromCache: ev.fromCache})
	}
}

// watchLoop reloads and republishes when another process rewrites the data
// file. Events within selfWriteWindow of our own save are skipped; the local
// commit already published.
func (s *FileTaskStore) watchLoop() {
	defer s.wg.Done()
	for {
		select {
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if event.Name != s.filePath {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			s.reloadAndPublish()
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			s.reportError(err)
		case <-s.stopCh:
			return
		}
	}
}

func (s *FileTaskStore) reloadAndPublish() {
	if err := s.flk.Lock(); err != nil {
		s.reportError(err)
		return
	}
	defer func() { _ = s.flk.Unlock() }()

	if time.Since(s.lastSave) < selfWriteWindow {
		return
	}
	if err := s.loadTasksFromFileInternal(); err != nil {
		s.reportError(err)
		return
	}
	s.publishLocked(false)
}

// reportError hands a stream error to every subscriber that supplied a
// handler. Errors never cross the subscription boundary as panics.
func (s *FileTaskStore) reportError(err error) {
	s.subMu.Lock()
	handlers := make([]func(error), 0, len(s.subs))
	for _, sub := range s.subs {
		if sub.onError != nil {
			handlers = append(handlers, sub.onError)
		}
	}
	s.subMu.Unlock()

	for _, handler := range handlers {
		handler(err)
	}
}

// fileBatch stages updates and deletes for a single atomic save.
type fileBatch struct {
	store   *FileTaskStore
	updates []stagedUpdate
	deletes []string
}

type stagedUpdate struct {
	id     string
	fields map[string]interface{}
}

func (b *fileBatch) Update(id string, fields map[string]interface{}) {
	b.updates = append(b.updates, stagedUpdate{id: id, fields: fields})
}

func (b *fileBatch) Delete(id string) {
	b.deletes = append(b.deletes, id)
}

// Commit applies all staged writes under one lock and one save. Nothing is
// applied if any staged update fails or the save fails.
func (b *fileBatch) Commit() error {
	if len(b.updates) == 0 && len(b.deletes) == 0 {
		return nil
	}
	s := b.store

	if err := s.flk.Lock(); err != nil {
		return types.NewTaskError(types.CodeBatchFailed, "could not lock file for batch commit", err)
	}
	defer func() { _ = s.flk.Unlock() }()

	if err := s.loadTasksFromFileInternal(); err != nil {
		return types.NewTaskError(types.CodeBatchFailed, "failed to reload tasks before batch commit", err)
	}

	// Work on a copy so a mid-batch failure applies nothing.
	working := make(map[string]models.Task, len(s.tasks))
	for id, task := range s.tasks {
		working[id] = task
	}

	for _, upd := range b.updates {
		task, exists := working[upd.id]
		if !exists {
			return types.NewTaskError(types.CodeBatchFailed, "batch update failed", notFoundErr(upd.id))
		}
		if err := applyUpdates(&task, upd.fields); err != nil {
			return types.NewTaskError(types.CodeBatchFailed, "batch update failed", err)
		}
		if err := models.ValidateStruct(task); err != nil {
			return types.NewTaskError(types.CodeBatchFailed, "batch update produced an invalid task", err)
		}
		working[upd.id] = task
	}
	for _, id := range b.deletes {
		delete(working, id)
	}

	original := s.tasks
	s.tasks = working
	if err := s.saveTasksToFileInternal(); err != nil {
		s.tasks = original
		return types.NewTaskError(types.CodeBatchFailed, "failed to save batch commit", err)
	}

	s.publishLocked(false)
	return nil
}
