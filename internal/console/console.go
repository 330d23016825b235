// Package console implements the interactive menu UI: a root login menu
// dispatching to the admin and customer menus. All operator-facing text
// goes to the console writer; diagnostics go to the logger.
package console

import (
	"context"
	"fmt"
	"io"

	"cinemahub/internal/usecase"
	"cinemahub/pkg/utils"

	"go.uber.org/zap"
)

type Console struct {
	prompt  *Prompt
	out     io.Writer
	service *usecase.Service
	admin   utils.AdminConfig
	log     *zap.Logger
}

func New(in io.Reader, out io.Writer, service *usecase.Service, admin utils.AdminConfig, log *zap.Logger) *Console {
	return &Console{
		prompt:  NewPrompt(in, out),
		out:     out,
		service: service,
		admin:   admin,
		log:     log.With(zap.String("component", "console")),
	}
}

// Run drives the root menu loop until the operator exits or input ends.
func (c *Console) Run(ctx context.Context) {
	fmt.Fprintln(c.out, "****** Welcome to CinemaHub! ******")

	for !c.prompt.Exhausted() {
		fmt.Fprintln(c.out, "\nLogin as:")
		fmt.Fprintln(c.out, "1. Admin")
		fmt.Fprintln(c.out, "2. User")
		fmt.Fprintln(c.out, "3. Exit")

		switch c.prompt.Int("Enter your choice: ") {
		case 1:
			c.adminLogin(ctx)
		case 2:
			c.userMenu(ctx)
		case 3:
			fmt.Fprintln(c.out, "Thank you for using CinemaHub!")
			return
		default:
			if !c.prompt.Exhausted() {
				fmt.Fprintln(c.out, "Invalid choice. Please try again.")
			}
		}
	}
}
