package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/glabrego/newsdeck/internal/news"
)

// MemoryDSN keeps the corpus in a private in-memory database that disappears with the process.
const MemoryDSN = "file:newsdeck?mode=memory&cache=shared"

type Repository struct {
	db *sql.DB
}

func NewRepository(path string) (*Repository, error) {
	if path == "" {
		path = MemoryDSN
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// A shared-cache memory database lives only while a connection is open.
	db.SetMaxOpenConns(1)
	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

func (r *Repository) Init(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS articles (
  seq INTEGER PRIMARY KEY AUTOINCREMENT,
  id TEXT NOT NULL UNIQUE,
  title TEXT NOT NULL,
  excerpt TEXT NOT NULL,
  content TEXT NOT NULL,
  category TEXT NOT NULL,
  topic TEXT NOT NULL,
  image_url TEXT NOT NULL,
  published_at TEXT NOT NULL,
  featured INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS trending_topics (
  position INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  count INTEGER NOT NULL CHECK (count >= 0)
);
CREATE TABLE IF NOT EXISTS write_check (
  id INTEGER PRIMARY KEY,
  checked_at TEXT NOT NULL
);
`
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

func (r *Repository) CheckWritable(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO write_check (id, checked_at) VALUES (1, ?)
ON CONFLICT(id) DO UPDATE SET checked_at=excluded.checked_at
`, time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("write check: %w", err)
	}
	return nil
}

// ReplaceArticles stores the corpus, discarding whatever was there before.
// Insertion order is preserved by ListArticles.
func (r *Repository) ReplaceArticles(ctx context.Context, articles []news.Article) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM articles`); err != nil {
		return fmt.Errorf("clear articles: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO articles (id, title, excerpt, content, category, topic, image_url, published_at, featured)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
`)
	if err != nil {
		return fmt.Errorf("prepare save statement: %w", err)
	}
	defer stmt.Close()

	for _, a := range articles {
		featured := 0
		if a.Featured {
			featured = 1
		}
		_, err := stmt.ExecContext(
			ctx,
			a.ID,
			a.Title,
			a.Excerpt,
			a.Content,
			a.Category,
			a.Topic,
			a.ImageURL,
			a.Timestamp.UTC().Format(time.RFC3339Nano),
			featured,
		)
		if err != nil {
			return fmt.Errorf("save article %s: %w", a.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func (r *Repository) ListArticles(ctx context.Context) ([]news.Article, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, title, excerpt, content, category, topic, image_url, published_at, featured
FROM articles
ORDER BY seq
`)
	if err != nil {
		return nil, fmt.Errorf("query articles: %w", err)
	}
	defer rows.Close()

	articles := make([]news.Article, 0, 32)
	for rows.Next() {
		var a news.Article
		var publishedAt string
		var featured int
		if err := rows.Scan(
			&a.ID,
			&a.Title,
			&a.Excerpt,
			&a.Content,
			&a.Category,
			&a.Topic,
			&a.ImageURL,
			&publishedAt,
			&featured,
		); err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		a.Timestamp, err = time.Parse(time.RFC3339Nano, publishedAt)
		if err != nil {
			return nil, fmt.Errorf("parse article published_at %q: %w", publishedAt, err)
		}
		a.Featured = featured != 0
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return articles, nil
}

func (r *Repository) ReplaceTrending(ctx context.Context, topics []news.TrendingTopic) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM trending_topics`); err != nil {
		return fmt.Errorf("clear trending topics: %w", err)
	}
	for i, t := range topics {
		if _, err := tx.ExecContext(ctx, `INSERT INTO trending_topics (position, name, count) VALUES (?, ?, ?)`, i, t.Name, t.Count); err != nil {
			return fmt.Errorf("save trending topic %q: %w", t.Name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func (r *Repository) ListTrending(ctx context.Context) ([]news.TrendingTopic, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name, count FROM trending_topics ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query trending topics: %w", err)
	}
	defer rows.Close()

	topics := make([]news.TrendingTopic, 0, 8)
	for rows.Next() {
		var t news.TrendingTopic
		if err := rows.Scan(&t.Name, &t.Count); err != nil {
			return nil, fmt.Errorf("scan trending topic: %w", err)
		}
		topics = append(topics, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return topics, nil
}
