package stopwatch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/oshokin/clockeroo/internal/config"
	"github.com/oshokin/clockeroo/internal/domain/session"
)

// Field names of the persisted JSON document.
const (
	fieldID        = "id"
	fieldStartedAt = "started_at"
	fieldPID       = "pid"
	fieldHostname  = "hostname"
	fieldUsername  = "username"
)

// ErrCorrupt is returned when the file exists but does not describe a record.
var ErrCorrupt = errors.New("corrupt stopwatch record")

// FileRepository persists the stopwatch record to a JSON file on disk.
// JSON is produced and consumed via protojson over a structpb.Struct.
type FileRepository struct {
	// path is the filesystem location of the record file.
	path string
	// mu serializes access from this process; other processes are not coordinated.
	mu sync.Mutex
}

// NewFileRepository creates a repository that reads/writes the record at the provided path.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{
		path: filepath.Clean(path),
	}
}

// Path returns the location of the record file.
func (r *FileRepository) Path() string {
	return r.path
}

// Load reads the record from disk.
func (r *FileRepository) Load(_ context.Context) (*session.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load()
}

// Save writes the record to disk, replacing any previous one.
func (r *FileRepository) Save(_ context.Context, record *session.Record) error {
	if record == nil {
		return errRecordIsNotSet
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	document, err := toProto(record)
	if err != nil {
		return fmt.Errorf("encode stopwatch record: %w", err)
	}

	marshalOptions := protojson.MarshalOptions{
		Multiline: true,
	}

	data, err := marshalOptions.Marshal(document)
	if err != nil {
		return fmt.Errorf("encode stopwatch record: %w", err)
	}

	return r.writeAtomically(data)
}

// Delete removes the record file if it still belongs to id.
// Between reading the ID and removing the file another process may start a new
// stopwatch; that race is not guarded against.
func (r *FileRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id != uuid.Nil {
		current, err := r.load()
		if err != nil && !errors.Is(err, ErrCorrupt) {
			return err
		}

		if current != nil && current.ID != id {
			return ErrSuperseded
		}
	}

	if err := os.Remove(r.path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrNotFound
		}

		return fmt.Errorf("remove stopwatch record: %w", err)
	}

	return nil
}

// load reads and decodes the record; the caller holds mu.
func (r *FileRepository) load() (*session.Record, error) {
	contents, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("read stopwatch record: %w", err)
	}

	var document structpb.Struct
	if err = protojson.Unmarshal(contents, &document); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}

	return fromProto(&document)
}

// writeAtomically replaces the record file via a temporary file in the same directory.
func (r *FileRepository) writeAtomically(data []byte) error {
	dir := filepath.Dir(r.path)

	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create stopwatch record: %w", err)
	}

	tmpName := tmp.Name()

	defer func() {
		_ = os.Remove(tmpName)
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write stopwatch record: %w", err)
	}

	if err = tmp.Chmod(config.DefaultFilePermissions); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write stopwatch record: %w", err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("write stopwatch record: %w", err)
	}

	if err = os.Rename(tmpName, r.path); err != nil {
		return fmt.Errorf("replace stopwatch record: %w", err)
	}

	return nil
}

// toProto converts the domain Record into its JSON document.
func toProto(record *session.Record) (*structpb.Struct, error) {
	fields := map[string]any{
		fieldID:        record.ID.String(),
		fieldStartedAt: record.StartedAt.UTC().Format(time.RFC3339Nano),
		fieldPID:       record.PID,
	}

	if record.Owner != nil {
		fields[fieldHostname] = record.Owner.Hostname
		fields[fieldUsername] = record.Owner.Username
	}

	return structpb.NewStruct(fields)
}

// fromProto converts the JSON document into the domain Record.
func fromProto(document *structpb.Struct) (*session.Record, error) {
	fields := document.GetFields()

	id, err := uuid.Parse(fields[fieldID].GetStringValue())
	if err != nil {
		return nil, fmt.Errorf("%w: id: %w", ErrCorrupt, err)
	}

	startedAt, err := time.Parse(time.RFC3339Nano, fields[fieldStartedAt].GetStringValue())
	if err != nil {
		return nil, fmt.Errorf("%w: started_at: %w", ErrCorrupt, err)
	}

	var owner *session.Owner

	hostname, hasHost := fields[fieldHostname]
	username, hasUser := fields[fieldUsername]

	if hasHost || hasUser {
		owner = &session.Owner{
			Hostname: hostname.GetStringValue(),
			Username: username.GetStringValue(),
		}
	}

	return &session.Record{
		ID:        id,
		StartedAt: startedAt.Local(),
		PID:       int(fields[fieldPID].GetNumberValue()),
		Owner:     owner,
	}, nil
}
