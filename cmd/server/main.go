// Command server runs the song request API.
//
//	@title			Song Request API
//	@version		1.0
//	@description	Live song-request queue: free first request per social identity, paid requests after, ordered play queue.
//	@BasePath		/api
package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/tbourn/go-songrequest-backend/internal/app"
)

func main() {
	if err := app.Run(context.Background(), os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
