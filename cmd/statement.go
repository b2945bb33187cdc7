package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"coinloop/internal/adapter/usecase"
	"coinloop/internal/core/domain"
	"coinloop/internal/core/port"
	"coinloop/internal/db"
)

func newStatementCmd(a *app) *cobra.Command {
	var userID string
	cmd := &cobra.Command{
		Use:   "statement",
		Short: "Print a user's balance and transaction log",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeStore, err := db.OpenStore(cmd.Context(), a.cfg, false, a.logger)
			if err != nil {
				return err
			}
			defer closeStore()
			svc := usecase.NewEconomyUseCase(store, a.logger)
			w, err := svc.Reconcile(cmd.Context(), userID)
			if err != nil && !errors.Is(err, domain.ErrLedgerMismatch) {
				return err
			}
			renderStatement(cmd, w)
			return err
		},
	}
	cmd.Flags().StringVarP(&userID, "user", "u", "", "user id")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func renderStatement(cmd *cobra.Command, w *port.Wallet) {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetTitle(fmt.Sprintf("%s: %d credits", w.User.ID, w.User.Credits))
	t.AppendHeader(table.Row{"Time", "Type", "Amount", "Description"})
	for _, tx := range w.Transactions {
		t.AppendRow(table.Row{tx.CreatedAt.Format(time.RFC3339), tx.Kind, tx.Signed(), tx.Description})
	}
	t.AppendFooter(table.Row{"", "Sum", domain.SignedSum(w.Transactions), ""})
	t.Render()
}
