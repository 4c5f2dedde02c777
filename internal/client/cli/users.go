package cli

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"
)

func (c *Cli) runUsers(ctx context.Context) error {
	users, err := c.session.Users(ctx)
	if err != nil {
		return err
	}

	if len(users) == 0 {
		c.io.Println("No users found.")
		return nil
	}

	w := tabwriter.NewWriter(c.io, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tUSERNAME\tEMAIL\tTYPE\tCREATED")
	for _, u := range users {
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			u.ID, u.Username, u.Email, u.UserType, u.CreatedAt.Format(time.DateTime))
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write users: %w", err)
	}

	c.io.Printf("\nTotal: %d\n", len(users))
	return nil
}
