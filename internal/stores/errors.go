package stores

import (
	"fmt"

	"github.com/mrlokans/lexicard/internal/api"
)

// describe renders err for the single error slot of a store.
func describe(action string, err error) string {
	if msg := api.ServerMessage(err); msg != "" {
		return fmt.Sprintf("%s: %s", action, msg)
	}
	return fmt.Sprintf("%s: %v", action, err)
}
