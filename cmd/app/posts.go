package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (app *application) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all posts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.engine.Load(cmd.Context()); err != nil {
				return err
			}

			return app.printPosts(cmd, app.engine.Snapshot().VisiblePosts)
		},
	}
}

func (app *application) searchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search posts by free text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.engine.Load(cmd.Context()); err != nil {
				return err
			}

			app.engine.Search(cmd.Context(), args[0])

			return app.printPosts(cmd, app.engine.Snapshot().VisiblePosts)
		},
	}
}

func (app *application) tagCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tag <tag>",
		Short: "List posts carrying a tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.engine.Load(cmd.Context()); err != nil {
				return err
			}

			app.engine.FilterByTag(cmd.Context(), args[0])

			return app.printPosts(cmd, app.engine.Snapshot().VisiblePosts)
		},
	}
}

func (app *application) tagsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List every tag in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.engine.Load(cmd.Context()); err != nil {
				return err
			}

			for _, tag := range app.engine.AllTags() {
				fmt.Fprintln(cmd.OutOrStdout(), tag)
			}
			return nil
		},
	}
}

func (app *application) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id-or-slug>",
		Short: "Show one post in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			post, err := app.client.GetPost(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return app.printPost(cmd, post)
		},
	}
}

func (app *application) createCmd() *cobra.Command {
	var (
		title      string
		content    string
		tags       []string
		heroBanner string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Publish a new post",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := app.engine.CreatePost(cmd.Context(), title, content, tags, heroBanner)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Post created")
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "post title")
	cmd.Flags().StringVar(&content, "content", "", "post content markup")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "comma-separated tags")
	cmd.Flags().StringVar(&heroBanner, "hero-banner", "", "hero banner image URL")
	cmd.MarkFlagRequired("title")

	return cmd
}

func (app *application) updateCmd() *cobra.Command {
	var (
		title      string
		content    string
		tags       []string
		heroBanner string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace an existing post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := app.engine.UpdatePost(cmd.Context(), args[0], title, content, tags, heroBanner)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Post updated")
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "post title")
	cmd.Flags().StringVar(&content, "content", "", "post content markup")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "comma-separated tags")
	cmd.Flags().StringVar(&heroBanner, "hero-banner", "", "hero banner image URL")
	cmd.MarkFlagRequired("title")

	return cmd
}

func (app *application) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.engine.DeletePost(cmd.Context(), args[0]); err != nil {
				return err
			}

			// Deleting does not refresh the cached list; the next list run
			// does.
			fmt.Fprintln(cmd.OutOrStdout(), "Post deleted")
			return nil
		},
	}
}

func (app *application) summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary <slug>",
		Short: "Request an AI-generated summary of a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := app.engine.GenerateSummary(cmd.Context(), args[0])
			if err != nil {
				if errors.Is(err, context.DeadlineExceeded) {
					return fmt.Errorf("summary generation timed out, try again")
				}
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), strings.TrimSpace(summary))
			return nil
		},
	}
}
