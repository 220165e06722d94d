package main

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/pointlessduffin-21/duffin-blogs/internal/blogclient"
	"github.com/pointlessduffin-21/duffin-blogs/internal/markdown"
)

func (app *application) printPosts(cmd *cobra.Command, posts []blogclient.Post) error {
	if len(posts) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No posts found")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "SLUG\tTITLE\tAUTHOR\tTAGS\tPOSTED")

	for i := range posts {
		p := &posts[i]
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			p.Slug,
			p.DisplayTitle(),
			p.DisplayAuthor(),
			strings.Join(p.Tags, ","),
			blogclient.TimeAgo(p.CreatedAt(), time.Now()),
		)
	}

	return w.Flush()
}

func (app *application) printPost(cmd *cobra.Command, p *blogclient.Post) error {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, p.DisplayTitle())
	fmt.Fprintf(out, "by %s, %s\n", p.DisplayAuthor(), blogclient.FormatPostTime(p.CreatedAt()))
	if p.UpdatedAt() != p.CreatedAt() {
		fmt.Fprintf(out, "updated %s\n", blogclient.FormatPostTime(p.UpdatedAt()))
	}
	if len(p.Tags) > 0 {
		fmt.Fprintf(out, "tags: %s\n", strings.Join(p.Tags, ", "))
	}
	if banner := p.HeroBanner(); banner != "" {
		fmt.Fprintf(out, "banner: %s\n", app.client.ResolveHeroBanner(banner))
	}
	if p.HasSummary() {
		fmt.Fprintf(out, "\nSummary: %s\n", p.Summary())
	}

	body := p.DisplayContent()
	if p.ParsedContent == "" {
		rendered, err := markdown.Render(p.Content)
		if err != nil {
			return err
		}
		body = rendered
	}

	fmt.Fprintf(out, "\n%s\n", body)
	return nil
}
