package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/glabrego/newsdeck/internal/digest"
	"github.com/glabrego/newsdeck/internal/news"
	article "github.com/glabrego/newsdeck/internal/render/article"
	"github.com/glabrego/newsdeck/internal/tui/state"
)

var (
	listCategory string
	listSearch   string
	showWidth    int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the filtered article list",
	Long: `Print articles the way the grid orders them: the featured article first,
then the rest newest first.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print one article as plain text",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	listCmd.Flags().StringVarP(&listCategory, "category", "c", news.AllCategories, "Category to show (All, World, Technology, Business, Sports)")
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "Case-insensitive search over title, excerpt and topic")
	showCmd.Flags().IntVar(&showWidth, "width", 80, "Wrap width")
}

func loadArticles(cmd *cobra.Command) ([]news.Article, func(), error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
	defer cancel()
	service, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	snapshot, err := service.Load(ctx)
	if err != nil {
		closeStore()
		return nil, nil, err
	}
	return snapshot.Articles, closeStore, nil
}

func runList(cmd *cobra.Command, args []string) error {
	if listCategory != news.AllCategories && !news.IsCategory(listCategory) {
		return fmt.Errorf("unknown category %q", listCategory)
	}
	articles, closeStore, err := loadArticles(cmd)
	if err != nil {
		return err
	}
	defer closeStore()

	printList(cmd.OutOrStdout(), digest.Filter(articles, listCategory, listSearch), time.Now())
	return nil
}

func printList(w io.Writer, articles []news.Article, now time.Time) {
	if len(articles) == 0 {
		fmt.Fprintln(w, "No articles found. Try adjusting your search or switching categories.")
		return
	}
	for _, a := range articles {
		marker := " "
		if a.Featured {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %-4s %-10s %-14s %-12s %s\n", marker, a.ID, a.Category, a.Topic, humanize.RelTime(a.Timestamp, now, "ago", "from now"), a.Title)
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	articles, closeStore, err := loadArticles(cmd)
	if err != nil {
		return err
	}
	defer closeStore()

	idx := state.ArticleIndexByID(articles, args[0])
	if idx < 0 {
		return fmt.Errorf("article %q not found", args[0])
	}
	a := articles[idx]
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, a.Title)
	fmt.Fprintln(out, strings.Repeat("=", min(len([]rune(a.Title)), showWidth)))
	fmt.Fprintf(out, "%s · %s · %s\n", a.Category, a.Topic, a.Timestamp.Format("Jan 2, 2006 15:04"))
	if a.ImageURL != "" {
		fmt.Fprintf(out, "Image: %s\n", a.ImageURL)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, article.PlainText(a, showWidth))
	return nil
}
