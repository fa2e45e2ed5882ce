package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"feedbackportal/internal/media"
	"feedbackportal/internal/model"
)

var (
	postTitle       string
	postDescription string
	postImagePath   string
	postMessage     string
	deleteYes       bool
	sentimentFilter string
)

var postsCommand = &cobra.Command{
	Use:   "posts",
	Short: "Browse and interact with portal posts",
}

var postsListCommand = &cobra.Command{
	Use:   "list",
	Short: "List posts with their comments",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.posts.Load(cmd.Context()); err != nil {
			return err
		}
		for _, p := range a.posts.Posts() {
			liked := " "
			if a.posts.Liked(p.ID) {
				liked = "*"
			}
			fmt.Printf("%s [%s] %s  (%d likes, %d comments)\n", liked, p.ID, p.Title, p.LikeCount, len(p.Comments))
			for _, c := range p.Comments {
				label := ""
				if c.Sentiment != "" {
					label = fmt.Sprintf(" [%s]", c.Sentiment)
				}
				fmt.Printf("    %s %s:%s %s\n", c.ID, c.AuthorName, label, c.Content)
				for _, r := range c.Replies {
					fmt.Printf("        %s: %s\n", r.AuthorName, r.Content)
				}
			}
		}
		return nil
	},
}

var postsCreateCommand = &cobra.Command{
	Use:   "create",
	Short: "Create a post",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		req := model.CreatePostRequest{Title: postTitle, Description: postDescription}
		if postImagePath != "" {
			image, err := media.PrepareImage(postImagePath)
			if err != nil {
				return err
			}
			req.Image = image
		}
		post, err := a.posts.CreatePost(cmd.Context(), req)
		if err != nil {
			return err
		}
		fmt.Printf("Created post %s\n", post.ID)
		return nil
	},
}

var postsUpdateCommand = &cobra.Command{
	Use:   "update <post-id>",
	Short: "Update a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.posts.Load(cmd.Context()); err != nil {
			return err
		}
		req := model.UpdatePostRequest{Title: postTitle, Description: postDescription}
		if postImagePath != "" {
			image, err := media.PrepareImage(postImagePath)
			if err != nil {
				return err
			}
			req.Image = image
		}
		if _, err := a.posts.UpdatePost(cmd.Context(), args[0], req); err != nil {
			return err
		}
		fmt.Printf("Updated post %s\n", args[0])
		return nil
	},
}

var postsDeleteCommand = &cobra.Command{
	Use:   "delete <post-id>",
	Short: "Delete a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !deleteYes && !confirm(fmt.Sprintf("Delete post %s? [y/N]: ", args[0])) {
			fmt.Println("Aborted")
			return nil
		}
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.posts.Load(cmd.Context()); err != nil {
			return err
		}
		if err := a.posts.DeletePost(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted post %s\n", args[0])
		return nil
	},
}

var postsLikeCommand = &cobra.Command{
	Use:   "like <post-id>",
	Short: "Toggle the like on a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.posts.Load(cmd.Context()); err != nil {
			return err
		}
		if err := a.posts.ToggleLike(cmd.Context(), args[0]); err != nil {
			return err
		}
		if a.posts.Liked(args[0]) {
			fmt.Printf("Liked post %s\n", args[0])
		} else {
			fmt.Printf("Unliked post %s\n", args[0])
		}
		return nil
	},
}

var postsCommentCommand = &cobra.Command{
	Use:   "comment <post-id>",
	Short: "Comment on a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.posts.Load(cmd.Context()); err != nil {
			return err
		}
		comment, err := a.posts.AddComment(cmd.Context(), args[0], postMessage)
		if err != nil {
			return err
		}
		fmt.Printf("Added comment %s\n", comment.ID)
		return nil
	},
}

var postsReplyCommand = &cobra.Command{
	Use:   "reply <comment-id>",
	Short: "Reply to a comment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.posts.Load(cmd.Context()); err != nil {
			return err
		}
		reply, err := a.posts.AddReply(cmd.Context(), args[0], postMessage)
		if err != nil {
			return err
		}
		fmt.Printf("Added reply %s\n", reply.ID)
		return nil
	},
}

var postsCommentsCommand = &cobra.Command{
	Use:   "comments",
	Short: "List comments across all posts, optionally by sentiment",
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, err := model.ParseSentiment(sentimentFilter)
		if err != nil {
			return err
		}
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.posts.Load(cmd.Context()); err != nil {
			return err
		}
		for _, c := range a.posts.CommentsBySentiment(filter) {
			label := string(c.Sentiment)
			if label == "" {
				label = "-"
			}
			fmt.Printf("%s [%s] on %q by %s: %s\n", c.ID, label, c.PostTitle, c.AuthorName, c.Content)
		}
		return nil
	},
}

func init() {
	postsCreateCommand.Flags().StringVar(&postTitle, "title", "", "post title")
	postsCreateCommand.Flags().StringVar(&postDescription, "description", "", "post description")
	postsCreateCommand.Flags().StringVar(&postImagePath, "image", "", "path to an image attachment")
	postsUpdateCommand.Flags().StringVar(&postTitle, "title", "", "post title")
	postsUpdateCommand.Flags().StringVar(&postDescription, "description", "", "post description")
	postsUpdateCommand.Flags().StringVar(&postImagePath, "image", "", "path to an image attachment")
	postsDeleteCommand.Flags().BoolVar(&deleteYes, "yes", false, "skip the confirmation prompt")
	postsCommentCommand.Flags().StringVar(&postMessage, "message", "", "comment text")
	postsReplyCommand.Flags().StringVar(&postMessage, "message", "", "reply text")
	postsCommentsCommand.Flags().StringVar(&sentimentFilter, "sentiment", "", "Positive, Neutral, or Negative")

	postsCommand.AddCommand(
		postsListCommand,
		postsCreateCommand,
		postsUpdateCommand,
		postsDeleteCommand,
		postsLikeCommand,
		postsCommentCommand,
		postsReplyCommand,
		postsCommentsCommand,
	)
}

func confirm(prompt string) bool {
	fmt.Print(prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
