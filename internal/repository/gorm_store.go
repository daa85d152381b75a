package repository

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"gorm.io/gorm"

	"github.com/iliyamo/hbnb-api/internal/model"
)

// GormStore persists records in a relational database.  Each write runs in
// its own transaction: reference and uniqueness checks are COUNT queries
// issued inside it, and the unique indexes declared on the models catch any
// race the checks miss.
type GormStore struct {
	db *gorm.DB // db is the GORM handle configured by the database package
}

// NewGormStore constructs a GormStore with the provided handle.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Migrate creates or alters the tables of every kind.
func (s *GormStore) Migrate(ctx context.Context) error {
	models := make([]any, 0, len(model.Kinds()))
	for _, k := range model.Kinds() {
		e, _ := model.New(k)
		models = append(models, e)
	}
	return s.db.WithContext(ctx).AutoMigrate(models...)
}

func (s *GormStore) Get(ctx context.Context, kind model.Kind, id string) (model.Entity, error) {
	e, err := model.New(kind)
	if err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Where("id = ?", id).Take(e).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound(kind, id)
		}
		return nil, err
	}
	return e, nil
}

func (s *GormStore) All(ctx context.Context, kind model.Kind) ([]model.Entity, error) {
	return s.find(s.db.WithContext(ctx), kind, nil)
}

func (s *GormStore) FindBy(ctx context.Context, kind model.Kind, field, value string) ([]model.Entity, error) {
	blank, err := model.New(kind)
	if err != nil {
		return nil, err
	}
	// field reaches SQL as a column name, so only lookup fields are accepted.
	if _, ok := blank.Lookup(field); !ok {
		return nil, fmt.Errorf("%s has no lookup field %q", kind, field)
	}
	return s.find(s.db.WithContext(ctx), kind, map[string]any{field: value})
}

// find loads the records of kind matching where into a []*T built by
// reflection and returns them as entities.
func (s *GormStore) find(db *gorm.DB, kind model.Kind, where map[string]any) ([]model.Entity, error) {
	blank, err := model.New(kind)
	if err != nil {
		return nil, err
	}
	slice := reflect.New(reflect.SliceOf(reflect.TypeOf(blank)))
	q := db.Model(blank)
	if where != nil {
		q = q.Where(where)
	}
	if err := q.Order("created_at, id").Find(slice.Interface()).Error; err != nil {
		return nil, err
	}
	elems := slice.Elem()
	out := make([]model.Entity, 0, elems.Len())
	for i := 0; i < elems.Len(); i++ {
		out = append(out, elems.Index(i).Interface().(model.Entity))
	}
	return out, nil
}

func (s *GormStore) Add(ctx context.Context, e model.Entity) (model.Entity, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkWrite(tx, e, ""); err != nil {
			return err
		}
		return tx.Create(e).Error
	})
	if err != nil {
		return nil, translate(e, err)
	}
	return e, nil
}

func (s *GormStore) Update(ctx context.Context, kind model.Kind, id string, changes model.Attrs, allowed []string) (model.Entity, error) {
	var next model.Entity
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cur, err := model.New(kind)
		if err != nil {
			return err
		}
		if err := tx.Where("id = ?", id).Take(cur).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound(kind, id)
			}
			return err
		}
		patched, err := cur.Patch(changes, allowed)
		if err != nil {
			return err
		}
		if err := checkWrite(tx, patched, id); err != nil {
			return err
		}
		next = patched.Touched(model.Now())
		return tx.Save(next).Error
	})
	if err != nil {
		return nil, translate(next, err)
	}
	return next, nil
}

// checkWrite mirrors FileStore.checkWrite with COUNT queries.
func checkWrite(tx *gorm.DB, e model.Entity, self string) error {
	for _, ref := range e.References() {
		target, err := model.New(ref.Kind)
		if err != nil {
			return err
		}
		var n int64
		if err := tx.Model(target).Where("id = ?", ref.ID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return invalidReference(ref)
		}
	}
	// A blank model keeps gorm from adding e's own primary key to the query.
	blank, err := model.New(e.Kind())
	if err != nil {
		return err
	}
	for _, c := range e.UniqueKeys() {
		where := make(map[string]any, len(c))
		for k, v := range c {
			where[k] = v
		}
		q := tx.Model(blank).Where(where)
		if self != "" {
			q = q.Where("id <> ?", self)
		}
		var n int64
		if err := q.Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return &ConflictError{Kind: e.Kind(), Constraint: c}
		}
	}
	return nil
}

// translate maps driver errors surfaced through gorm's TranslateError option
// onto the store's error taxonomy.
func translate(e model.Entity, err error) error {
	switch {
	case e != nil && errors.Is(err, gorm.ErrDuplicatedKey):
		keys := e.UniqueKeys()
		if len(keys) == 0 {
			return fmt.Errorf("%w: %v", ErrConflict, err)
		}
		return &ConflictError{Kind: e.Kind(), Constraint: keys[0]}
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return &model.ValidationError{Message: "Invalid reference specified"}
	}
	return err
}

// Close releases the underlying connection pool.
func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
