package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"feedbackportal/internal/model"
)

var (
	complaintPage    int
	complaintOrder   string
	complaintProduct string
	complaintText    string
	complaintMessage string
)

var complaintsCommand = &cobra.Command{
	Use:   "complaints",
	Short: "Raise and triage complaints",
}

var complaintsListCommand = &cobra.Command{
	Use:   "list",
	Short: "List complaints (all of them for admins, one page for users)",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.complaints.Load(cmd.Context(), complaintPage); err != nil {
			return err
		}
		for _, c := range a.complaints.Complaints() {
			fmt.Printf("[%s] order %s (%s) %s/%s: %s\n", c.ID, c.OrderID, c.ProductType, c.Severity, c.Status, c.Description)
			for _, r := range c.Replies {
				fmt.Printf("    %s: %s\n", r.AuthorName, r.Content)
			}
		}
		page := a.complaints.Page()
		if page.TotalPages > 1 {
			fmt.Printf("Page %d of %d\n", page.CurrentPage, page.TotalPages)
		}
		return nil
	},
}

var complaintsRaiseCommand = &cobra.Command{
	Use:   "raise",
	Short: "Raise a complaint about an order",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		req := model.RaiseComplaintRequest{
			OrderID:     complaintOrder,
			ProductType: complaintProduct,
			Description: complaintText,
		}
		if err := a.complaints.Raise(cmd.Context(), req); err != nil {
			return err
		}
		fmt.Printf("Complaint raised for order %s\n", complaintOrder)
		return nil
	},
}

var complaintsCloseCommand = &cobra.Command{
	Use:   "close <complaint-id>",
	Short: "Close a complaint",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.complaints.Load(cmd.Context(), complaintPage); err != nil {
			return err
		}
		if err := a.complaints.Close(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("Closed complaint %s\n", args[0])
		return nil
	},
}

var complaintsReplyCommand = &cobra.Command{
	Use:   "reply <complaint-id>",
	Short: "Reply to a complaint",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.complaints.Load(cmd.Context(), complaintPage); err != nil {
			return err
		}
		if _, err := a.complaints.AddReply(cmd.Context(), args[0], complaintMessage); err != nil {
			return err
		}
		fmt.Printf("Replied to complaint %s\n", args[0])
		return nil
	},
}

func init() {
	complaintsListCommand.Flags().IntVar(&complaintPage, "page", 1, "page to load (ignored for admins)")
	complaintsCloseCommand.Flags().IntVar(&complaintPage, "page", 1, "page the complaint is on")
	complaintsReplyCommand.Flags().IntVar(&complaintPage, "page", 1, "page the complaint is on")
	complaintsRaiseCommand.Flags().StringVar(&complaintOrder, "order", "", "order id")
	complaintsRaiseCommand.Flags().StringVar(&complaintProduct, "product", "", "product type")
	complaintsRaiseCommand.Flags().StringVar(&complaintText, "description", "", "what went wrong")
	complaintsReplyCommand.Flags().StringVar(&complaintMessage, "message", "", "reply text")

	complaintsCommand.AddCommand(
		complaintsListCommand,
		complaintsRaiseCommand,
		complaintsCloseCommand,
		complaintsReplyCommand,
	)
}
