package app

import (
	"context"
	"fmt"

	"github.com/glabrego/newsdeck/internal/news"
)

type Repository interface {
	ReplaceArticles(ctx context.Context, articles []news.Article) error
	ListArticles(ctx context.Context) ([]news.Article, error)
	ReplaceTrending(ctx context.Context, topics []news.TrendingTopic) error
	ListTrending(ctx context.Context) ([]news.TrendingTopic, error)
}

// Snapshot is the read-only data the reader works from.
type Snapshot struct {
	Articles []news.Article
	Trending []news.TrendingTopic
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Seed writes the startup corpus. It runs once before the UI starts.
func (s *Service) Seed(ctx context.Context, articles []news.Article, trending []news.TrendingTopic) error {
	if err := s.repo.ReplaceArticles(ctx, articles); err != nil {
		return fmt.Errorf("save articles to store: %w", err)
	}
	if err := s.repo.ReplaceTrending(ctx, trending); err != nil {
		return fmt.Errorf("save trending topics to store: %w", err)
	}
	return nil
}

func (s *Service) Load(ctx context.Context) (Snapshot, error) {
	articles, err := s.repo.ListArticles(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("load articles from store: %w", err)
	}
	trending, err := s.repo.ListTrending(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("load trending topics from store: %w", err)
	}
	return Snapshot{Articles: articles, Trending: trending}, nil
}
