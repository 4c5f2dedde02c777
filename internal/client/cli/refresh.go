package cli

import (
	"context"
	"time"
)

func (c *Cli) runRefresh(ctx context.Context) error {
	c.io.Println("=== Token Refresh ===")

	session, err := c.session.Refresh(ctx)
	if err != nil {
		return err
	}

	c.io.Println("✓ Token refreshed successfully!")
	if !session.ExpiresAt.IsZero() {
		c.io.Printf("Access token expires: %s\n", session.ExpiresAt.Format(time.RFC3339))
	}

	return nil
}
