// Song catalog HTTP handlers.
//
//   - GET    /songs            (list, by title)
//   - GET    /songs/search?q=  (case-insensitive title/artist search)
//   - POST   /songs            (create)
//   - DELETE /songs/{id}       (delete; existing requests keep a null song)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-songrequest-backend/internal/domain"
	"github.com/tbourn/go-songrequest-backend/internal/services"
)

// CreateSongBody is the JSON payload for adding a catalog song.
type CreateSongBody struct {
	Title     string           `json:"title" example:"Imagine"`
	Artist    string           `json:"artist" example:"John Lennon"`
	Genre     string           `json:"genre" example:"pop"`
	Relevance domain.Relevance `json:"relevance,omitempty" example:"high" enums:"low,medium,high"`
}

// ListSongs godoc
// @ID          listSongs
// @Summary     List the catalog
// @Tags        Songs
// @Produce     json
// @Success     200  {array}   domain.Song
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /songs [get]
func (h *Handlers) ListSongs(c *gin.Context) {
	songs, err := h.songSvc.List(c.Request.Context())
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, nonNil(songs))
}

// SearchSongs godoc
// @ID          searchSongs
// @Summary     Search the catalog
// @Description Case-insensitive substring match on title or artist. An empty query returns an empty list.
// @Tags        Songs
// @Produce     json
// @Param       q  query  string  false  "Search text"  example(beatles)
// @Success     200  {array}   domain.Song
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /songs/search [get]
func (h *Handlers) SearchSongs(c *gin.Context) {
	songs, err := h.songSvc.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, nonNil(songs))
}

// CreateSong godoc
// @ID          createSong
// @Summary     Add a song
// @Description Relevance defaults to medium.
// @Tags        Songs
// @Accept      json
// @Produce     json
// @Param       body  body  handlers.CreateSongBody  true  "Song payload"
// @Success     201  {object}  domain.Song
// @Failure     400  {object}  handlers.ErrorResponse  "Missing field or invalid relevance"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /songs [post]
func (h *Handlers) CreateSong(c *gin.Context) {
	var body CreateSongBody
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	song, err := h.songSvc.Create(c.Request.Context(), services.CreateSongInput{
		Title:     body.Title,
		Artist:    body.Artist,
		Genre:     body.Genre,
		Relevance: body.Relevance,
	})
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusCreated, song)
}

// DeleteSong godoc
// @ID          deleteSong
// @Summary     Delete a song
// @Tags        Songs
// @Param       id  path  string  true  "Song ID (UUID)"  format(uuid)
// @Success     204  {string}  string  "No Content"
// @Failure     404  {object}  handlers.ErrorResponse  "Song not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /songs/{id} [delete]
func (h *Handlers) DeleteSong(c *gin.Context) {
	if err := h.songSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		failErr(c, err)
		return
	}
	noContent(c)
}

// nonNil keeps empty lists encoded as [] rather than null.
func nonNil(s []domain.Song) []domain.Song {
	if s == nil {
		return []domain.Song{}
	}
	return s
}
