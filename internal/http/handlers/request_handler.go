// Request HTTP handlers.
//
//   - GET    /requests                         (ordered queue)
//   - POST   /requests                         (submit; Idempotency-Key aware)
//   - PATCH  /requests/{id}                    (partial update)
//   - DELETE /requests/{id}                    (delete)
//   - POST   /requests/{id}/like               (increment likes)
//   - GET    /check-free-request/{user_social} (free slot check)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-songrequest-backend/internal/domain"
	"github.com/tbourn/go-songrequest-backend/internal/http/middleware"
	"github.com/tbourn/go-songrequest-backend/internal/services"
)

// HeaderIdempotencyReplayed marks a response that replays an earlier
// submission.
const HeaderIdempotencyReplayed = "Idempotency-Replayed"

//
// DTOs
//

// CreateRequestBody is the JSON payload for submitting a song request.
// Required fields are checked by the service so that the error names the
// missing field.
type CreateRequestBody struct {
	SongID          string                  `json:"song_id" example:"9b2f5c1e-8a43-4c1d-9f59-2f3b5c7d9e10"`
	UserName        string                  `json:"user_name" example:"Ana"`
	UserSocial      string                  `json:"user_social" example:"@ana"`
	Message         string                  `json:"message" example:"Happy birthday Leo!"`
	SocialPlatforms *domain.SocialPlatforms `json:"social_platforms"`
}

// UpdateRequestBody is the JSON payload for PATCH /requests/{id}. Absent
// fields are left untouched; at least one must be present.
type UpdateRequestBody struct {
	Status        *domain.RequestStatus `json:"status,omitempty" example:"playing"`
	Likes         *int                  `json:"likes,omitempty" example:"3"`
	PaymentStatus *domain.PaymentStatus `json:"payment_status,omitempty" example:"completed"`
}

//
// Handlers
//

// ListRequests godoc
// @ID          listRequests
// @Summary     Ordered request queue
// @Description Returns payment-completed requests in play order: status (pending, queue, playing, completed), paid before free, price, priority, then age.
// @Tags        Requests
// @Produce     json
// @Param       status  query  string  false  "Comma-separated statuses"  example(pending,queue,playing)
// @Success     200  {array}   domain.Request
// @Failure     400  {object}  handlers.ErrorResponse  "Unknown status"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /requests [get]
func (h *Handlers) ListRequests(c *gin.Context) {
	statuses, err := services.ParseStatuses(c.Query("status"))
	if err != nil {
		failErr(c, err)
		return
	}
	items, err := h.reqSvc.List(c.Request.Context(), statuses)
	if err != nil {
		failErr(c, err)
		return
	}
	if items == nil {
		items = []domain.Request{}
	}
	ok(c, http.StatusOK, items)
}

// CreateRequest godoc
// @ID          createRequest
// @Summary     Submit a song request
// @Description The first request of a social identity is free and counts as paid; later ones cost the song price and stay hidden from the queue until payment completes.
// @Description Retries carrying the same Idempotency-Key return the original request with 200 and Idempotency-Replayed: true.
// @Tags        Requests
// @Accept      json
// @Produce     json
// @Param       Idempotency-Key  header  string  false  "Idempotency key for safe retries"  example(7a8d9f4c-1b2a-4c3d-8e9f-0123456789ab)
// @Param       body  body  handlers.CreateRequestBody  true  "Request payload"
// @Success     201  {object}  domain.Request
// @Success     200  {object}  domain.Request  "Replayed"
// @Failure     400  {object}  handlers.ErrorResponse  "Missing field or no follows"
// @Failure     404  {object}  handlers.ErrorResponse  "Song not found"
// @Failure     409  {object}  handlers.ErrorResponse  "Idempotency key already used"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /requests [post]
func (h *Handlers) CreateRequest(c *gin.Context) {
	var body CreateRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	key, _ := middleware.GetIdempotencyKey(c)
	req, replayed, err := h.reqSvc.CreateIdempotent(c.Request.Context(), middleware.IdempotencyScope(c), key, services.CreateRequestInput{
		SongID:          body.SongID,
		UserName:        body.UserName,
		UserSocial:      body.UserSocial,
		Message:         body.Message,
		SocialPlatforms: body.SocialPlatforms,
	})
	if err != nil {
		failErr(c, err)
		return
	}
	if replayed {
		c.Header(HeaderIdempotencyReplayed, "true")
		ok(c, http.StatusOK, req)
		return
	}
	ok(c, http.StatusCreated, req)
}

// UpdateRequest godoc
// @ID          updateRequest
// @Summary     Update a request
// @Description Partially updates status, likes and/or payment_status. All present fields are validated before anything is written.
// @Tags        Requests
// @Accept      json
// @Produce     json
// @Param       id    path  string  true  "Request ID (ULID)"
// @Param       body  body  handlers.UpdateRequestBody  true  "Fields to change"
// @Success     200  {object}  domain.Request
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid or empty patch"
// @Failure     404  {object}  handlers.ErrorResponse  "Request not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /requests/{id} [patch]
func (h *Handlers) UpdateRequest(c *gin.Context) {
	var body UpdateRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	req, err := h.reqSvc.Update(c.Request.Context(), c.Param("id"), domain.RequestChanges{
		Status:        body.Status,
		Likes:         body.Likes,
		PaymentStatus: body.PaymentStatus,
	})
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, req)
}

// DeleteRequest godoc
// @ID          deleteRequest
// @Summary     Delete a request
// @Tags        Requests
// @Param       id  path  string  true  "Request ID (ULID)"
// @Success     204  {string}  string  "No Content"
// @Failure     404  {object}  handlers.ErrorResponse  "Request not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /requests/{id} [delete]
func (h *Handlers) DeleteRequest(c *gin.Context) {
	if err := h.reqSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		failErr(c, err)
		return
	}
	noContent(c)
}

// LikeRequest godoc
// @ID          likeRequest
// @Summary     Like a request
// @Description Adds one like. Not deduplicated per client.
// @Tags        Requests
// @Produce     json
// @Param       id  path  string  true  "Request ID (ULID)"
// @Success     200  {object}  domain.Request
// @Failure     404  {object}  handlers.ErrorResponse  "Request not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /requests/{id}/like [post]
func (h *Handlers) LikeRequest(c *gin.Context) {
	req, err := h.reqSvc.IncrementLike(c.Request.Context(), c.Param("id"))
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, req)
}

// CheckFreeRequest godoc
// @ID          checkFreeRequest
// @Summary     Free request check
// @Description Reports whether a social identity has not submitted any request yet.
// @Tags        Requests
// @Produce     json
// @Param       user_social  path  string  true  "Social handle, with or without @"  example(@ana)
// @Success     200  {object}  services.FreeCheck
// @Failure     400  {object}  handlers.ErrorResponse  "Blank handle"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /check-free-request/{user_social} [get]
func (h *Handlers) CheckFreeRequest(c *gin.Context) {
	res, err := h.reqSvc.CheckFree(c.Request.Context(), c.Param("user_social"))
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, res)
}
