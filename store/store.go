// Package store connects to the data store and manages the recipe catalog
package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/simmer/internal/recipe"
)

var recipesBucket = []byte("recipes")

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
	now    func() time.Time
	newID  func() string
	dbPath string
}

// newID returns a time-ordered UUID so that key order matches insertion
// order.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}

func decode(key, value []byte) (recipe.Recipe, error) {
	var r recipe.Recipe

	if err := json.Unmarshal(value, &r); err != nil {
		return r, errDecodeRecipe.Fmt(string(key)).Wrap(err)
	}

	return r, nil
}

func put(tx *bolt.Tx, r *recipe.Recipe) error {
	value, err := json.Marshal(r)
	if err != nil {
		return err
	}

	return tx.Bucket(recipesBucket).Put([]byte(r.ID), value)
}

func (c *Client) List() ([]recipe.Recipe, error) {
	var recipes []recipe.Recipe

	err := c.View(func(tx *bolt.Tx) error {
		return tx.Bucket(recipesBucket).ForEach(func(k, v []byte) error {
			r, err := decode(k, v)
			if err != nil {
				return err
			}

			recipes = append(recipes, r)

			return nil
		})
	})

	return recipes, err
}

func (c *Client) Get(id string) (*recipe.Recipe, error) {
	var r recipe.Recipe

	err := c.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(recipesBucket).Get([]byte(id))
		if v == nil {
			return ErrRecipeNotFound.Fmt(id)
		}

		var err error

		r, err = decode([]byte(id), v)

		return err
	})
	if err != nil {
		return nil, err
	}

	return &r, nil
}

func (c *Client) Resolve(ref string, order recipe.SortOrder) (*recipe.Recipe, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, errEmptyRef
	}

	recipes, err := c.List()
	if err != nil {
		return nil, err
	}

	if n, err := strconv.Atoi(ref); err == nil {
		recipe.Sort(recipes, order)

		if n < 1 || n > len(recipes) {
			return nil, ErrRecipeNotFound.Fmt(ref)
		}

		return &recipes[n-1], nil
	}

	prefix := strings.ToLower(ref)

	var match *recipe.Recipe

	for i := range recipes {
		if recipes[i].ID == prefix {
			return &recipes[i], nil
		}

		if !strings.HasPrefix(recipes[i].ID, prefix) {
			continue
		}

		if match != nil {
			return nil, errAmbiguousRef.Fmt(ref)
		}

		match = &recipes[i]
	}

	if match == nil {
		return nil, ErrRecipeNotFound.Fmt(ref)
	}

	return match, nil
}

func (c *Client) Add(r *recipe.Recipe) error {
	r.ID = ""
	r.Normalize(c.newID)

	if err := r.Validate(); err != nil {
		return err
	}

	now := c.now()

	r.ID = c.newID()
	r.CreatedAt = now
	r.UpdatedAt = now
	r.Favorite = false

	return c.DB.Update(func(tx *bolt.Tx) error {
		return put(tx, r)
	})
}

// Update overwrites a saved recipe. The creation time and favourite flag of
// the stored copy are preserved.
func (c *Client) Update(r *recipe.Recipe) error {
	existing, err := c.Get(r.ID)
	if err != nil {
		return err
	}

	r.Normalize(c.newID)

	if err := r.Validate(); err != nil {
		return err
	}

	r.CreatedAt = existing.CreatedAt
	r.Favorite = existing.Favorite
	r.UpdatedAt = c.now()

	return c.DB.Update(func(tx *bolt.Tx) error {
		return put(tx, r)
	})
}

func (c *Client) ToggleFavorite(id string) (*recipe.Recipe, error) {
	r, err := c.Get(id)
	if err != nil {
		return nil, err
	}

	r.Favorite = !r.Favorite

	err = c.DB.Update(func(tx *bolt.Tx) error {
		return put(tx, r)
	})
	if err != nil {
		return nil, err
	}

	return r, nil
}

func (c *Client) Delete(id string) error {
	return c.DB.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(recipesBucket)
		if b.Get([]byte(id)) == nil {
			return ErrRecipeNotFound.Fmt(id)
		}

		return b.Delete([]byte(id))
	})
}

func (c *Client) Open() error {
	db, err := openDB(c.dbPath)
	if err != nil {
		return err
	}

	c.DB = db

	return nil
}

// open creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, errSimmerRunning
		}

		return nil, err
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	// Create the recipe bucket if it does not exist already
	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists(recipesBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Client{
		DB:     db,
		now:    time.Now,
		newID:  newID,
		dbPath: dbPath,
	}, nil
}
