package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"feedbackportal/internal/model"
)

var (
	assistSentiment string
	assistSeverity  string
	assistText      string
	assistSend      bool
	assistPage      int
)

var assistCommand = &cobra.Command{
	Use:   "assist",
	Short: "Draft replies with the suggestion service",
}

var assistCommentCommand = &cobra.Command{
	Use:   "comment <comment-id>",
	Short: "Suggest a reply to a comment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sentiment, err := model.ParseSentiment(assistSentiment)
		if err != nil {
			return err
		}
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		draft, err := a.assist.SuggestCommentReply(cmd.Context(), args[0], sentiment, assistText)
		if err != nil {
			return err
		}
		fmt.Printf("Draft: %s\n", draft)

		if !assistSend {
			return nil
		}
		if err := a.posts.Load(cmd.Context()); err != nil {
			return err
		}
		if err := a.assist.SendCommentReply(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println("Reply sent")
		return nil
	},
}

var assistComplaintCommand = &cobra.Command{
	Use:   "complaint <complaint-id>",
	Short: "Suggest a reply to a complaint",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		draft, err := a.assist.SuggestComplaintReply(cmd.Context(), args[0], model.Severity(assistSeverity), assistText)
		if err != nil {
			return err
		}
		fmt.Printf("Draft: %s\n", draft)

		if !assistSend {
			return nil
		}
		if err := a.complaints.Load(cmd.Context(), assistPage); err != nil {
			return err
		}
		if err := a.assist.SendComplaintReply(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println("Reply sent")
		return nil
	},
}

func init() {
	assistCommentCommand.Flags().StringVar(&assistSentiment, "sentiment", "", "comment sentiment label")
	assistCommentCommand.Flags().StringVar(&assistText, "text", "", "the comment being answered")
	assistCommentCommand.Flags().BoolVar(&assistSend, "send", false, "submit the draft after suggesting it")
	assistComplaintCommand.Flags().StringVar(&assistSeverity, "severity", "", "complaint severity label")
	assistComplaintCommand.Flags().StringVar(&assistText, "text", "", "the complaint being answered")
	assistComplaintCommand.Flags().BoolVar(&assistSend, "send", false, "submit the draft after suggesting it")
	assistComplaintCommand.Flags().IntVar(&assistPage, "page", 1, "page the complaint is on")

	assistCommand.AddCommand(assistCommentCommand, assistComplaintCommand)
}
