package repository

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/surrealdb/surrealdb.go"
	"github.com/surrealdb/surrealdb.go/pkg/models"

	"github.com/portfolio/backend/internal/config"
)

// SurrealDocumentStore stores each collection as a SurrealDB table.
type SurrealDocumentStore struct {
	db  *surrealdb.DB
	now func() time.Time
}

var _ DocumentStore = (*SurrealDocumentStore)(nil)

// fieldName restricts filter keys to plain identifiers; values are always
// bound as query parameters.
var fieldName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// OpenSurreal connects to the SurrealDB endpoint in cfg.URL, signs in when
// credentials are configured and selects cfg.Namespace / cfg.Name.
func OpenSurreal(ctx context.Context, cfg config.DatabaseConfig) (*SurrealDocumentStore, error) {
	db, err := surrealdb.FromEndpointURLString(ctx, cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to surrealdb: %w", err)
	}

	if cfg.Username != "" {
		if _, err := db.SignIn(ctx, surrealdb.Auth{
			Username: cfg.Username,
			Password: cfg.Password,
		}); err != nil {
			_ = db.Close(ctx)
			return nil, fmt.Errorf("sign in: %w", err)
		}
	}

	if err := db.Use(ctx, cfg.Namespace, cfg.Name); err != nil {
		_ = db.Close(ctx)
		return nil, fmt.Errorf("use %s/%s: %w", cfg.Namespace, cfg.Name, err)
	}

	return &SurrealDocumentStore{db: db, now: time.Now}, nil
}

// CreateDocument creates a record in the collection's table. SurrealDB
// creates the table on first insert.
func (s *SurrealDocumentStore) CreateDocument(ctx context.Context, collection string, payload any) (string, error) {
	fields, err := encodeDocument(payload)
	if err != nil {
		return "", &WriteError{Collection: collection, Err: err}
	}
	delete(fields, FieldID)
	delete(fields, "id")

	now := s.now().UTC()
	fields[FieldCreatedAt] = now
	fields[FieldUpdatedAt] = now

	created, err := surrealdb.Create[map[string]any](ctx, s.db, models.Table(collection), fields)
	if err != nil {
		return "", &WriteError{Collection: collection, Err: err}
	}
	if created == nil {
		return "", &WriteError{Collection: collection, Err: fmt.Errorf("no record returned")}
	}
	id, ok := (*created)["id"]
	if !ok {
		return "", &WriteError{Collection: collection, Err: fmt.Errorf("record has no id")}
	}
	return fmt.Sprint(plainValue(id)), nil
}

// GetDocuments selects records ordered by creation time.
func (s *SurrealDocumentStore) GetDocuments(ctx context.Context, collection string, filter Filter, limit int) ([]Document, error) {
	query, vars, err := buildSelect(collection, filter, limit)
	if err != nil {
		return nil, &QueryError{Collection: collection, Err: err}
	}

	res, err := surrealdb.Query[[]map[string]any](ctx, s.db, query, vars)
	if err != nil {
		return nil, &QueryError{Collection: collection, Err: err}
	}

	docs := []Document{}
	if res == nil || len(*res) == 0 {
		return docs, nil
	}
	for _, rec := range (*res)[0].Result {
		doc := Document{}
		for k, v := range rec {
			if k == "id" {
				doc[FieldID] = plainValue(v)
				continue
			}
			doc[k] = plainValue(v)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// ListCollections returns the database's table names, sorted.
func (s *SurrealDocumentStore) ListCollections(ctx context.Context) ([]string, error) {
	res, err := surrealdb.Query[map[string]any](ctx, s.db, "INFO FOR DB", nil)
	if err != nil {
		return nil, &QueryError{Err: err}
	}

	names := []string{}
	if res == nil || len(*res) == 0 {
		return names, nil
	}
	if tables, ok := (*res)[0].Result["tables"].(map[string]any); ok {
		names = append(names, sortedKeys(tables)...)
	}
	return names, nil
}

func (s *SurrealDocumentStore) Ping(ctx context.Context) error {
	_, err := surrealdb.Query[any](ctx, s.db, "RETURN true", nil)
	return err
}

func (s *SurrealDocumentStore) Close() {
	_ = s.db.Close(context.Background())
}

// buildSelect renders the SELECT for GetDocuments. The table name and all
// filter values are bound as parameters.
func buildSelect(collection string, filter Filter, limit int) (string, map[string]any, error) {
	vars := map[string]any{"tb": collection}

	var b strings.Builder
	b.WriteString("SELECT * FROM type::table($tb)")

	keys := make([]string, 0, len(filter))
	for k := range filter {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for i, k := range keys {
		if !fieldName.MatchString(k) {
			return "", nil, fmt.Errorf("invalid filter field %q", k)
		}
		if i == 0 {
			b.WriteString(" WHERE ")
		} else {
			b.WriteString(" AND ")
		}
		param := fmt.Sprintf("f%d", i)
		fmt.Fprintf(&b, "%s = $%s", k, param)
		vars[param] = filter[k]
	}

	b.WriteString(" ORDER BY " + FieldCreatedAt)
	if limit > 0 {
		b.WriteString(" LIMIT $limit")
		vars["limit"] = limit
	}
	return b.String(), vars, nil
}

// plainValue converts SurrealDB-specific values (record ids, datetimes)
// to strings, recursing into maps and slices.
func plainValue(v any) any {
	switch x := v.(type) {
	case models.RecordID:
		return fmt.Sprintf("%s:%v", x.Table, x.ID)
	case *models.RecordID:
		if x == nil {
			return nil
		}
		return fmt.Sprintf("%s:%v", x.Table, x.ID)
	case models.CustomDateTime:
		return formatTime(x.Time)
	case *models.CustomDateTime:
		if x == nil {
			return nil
		}
		return formatTime(x.Time)
	case time.Time:
		return formatTime(x)
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = plainValue(e)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[fmt.Sprint(k)] = plainValue(e)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = plainValue(e)
		}
		return out
	default:
		return v
	}
}
