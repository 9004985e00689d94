package draws

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/0wnerDied/Web-Development-Course-Design/internal/domain"
	"github.com/0wnerDied/Web-Development-Course-Design/internal/dto"
	"github.com/0wnerDied/Web-Development-Course-Design/internal/service/drawservice"
	"github.com/0wnerDied/Web-Development-Course-Design/pkg/auth"
	"github.com/0wnerDied/Web-Development-Course-Design/pkg/utils"
)

// Permission names consulted before any draw operation.
const (
	PermLaunchDraw = "launch_draw"
	PermViewLogs   = "view_logs"
)

type Service interface {
	Create(ctx context.Context, p drawservice.CreateParams) (int64, error)
	Execute(ctx context.Context, drawID int64) (*drawservice.ExecuteResult, error)
	SetWinner(ctx context.Context, drawID int64, winnerQQ string) error
	Delete(ctx context.Context, drawID int64) (int, error)
	ListAll(ctx context.Context) ([]domain.Draw, error)
	ListPending(ctx context.Context) ([]domain.Draw, error)
	ListWins(ctx context.Context, userQQ string) ([]domain.Draw, error)
}

type PermissionChecker interface {
	HasPermission(ctx context.Context, qq string, names ...string) (bool, error)
}

type DrawHandler struct {
	drawService Service
	permissions PermissionChecker
}

func New(drawService Service, permissions PermissionChecker) *DrawHandler {
	return &DrawHandler{
		drawService: drawService,
		permissions: permissions,
	}
}

func (h *DrawHandler) authorize(w http.ResponseWriter, r *http.Request, names ...string) (string, bool) {
	qq := r.Context().Value(auth.UserQQKey).(string)

	ok, err := h.permissions.HasPermission(r.Context(), qq, names...)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return "", false
	}
	if !ok {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return "", false
	}
	return qq, true
}

func drawID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func toDrawDTO(draw domain.Draw) dto.DrawResponseDTO {
	return dto.DrawResponseDTO{
		ID:           draw.ID,
		CreateTime:   draw.CreateTime,
		CreatorQQ:    draw.CreatorQQ,
		ItemID:       draw.ItemID,
		Fitting:      draw.Fitting,
		Num:          draw.Num,
		MinLPRequire: draw.MinLPRequire,
		PlanTime:     draw.PlanTime,
		Status:       int(draw.Status),
		Winners:      draw.Winners(),
		Description:  draw.Description,
	}
}

func respondWithDraws(w http.ResponseWriter, draws []domain.Draw) {
	response := dto.ListDrawsResponseDTO{Draws: make([]dto.DrawResponseDTO, len(draws))}
	for i, draw := range draws {
		response.Draws[i] = toDrawDTO(draw)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// ListDraws godoc
//
//	@Summary		List all draws
//	@Description	Get every draw, newest first
//	@Tags			LuckyDraw
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ListDrawsResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Missing permission"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/lucky-draw [get]
func (h *DrawHandler) ListDraws(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.authorize(w, r, PermLaunchDraw, PermViewLogs); !ok {
		return
	}

	draws, err := h.drawService.ListAll(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch draws")
		return
	}
	respondWithDraws(w, draws)
}

// ListPending godoc
//
//	@Summary		List pending draws
//	@Description	Get draws that have not been executed yet, earliest plan time first
//	@Tags			LuckyDraw
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ListDrawsResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Missing permission"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/lucky-draw/pending [get]
func (h *DrawHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.authorize(w, r, PermLaunchDraw, PermViewLogs); !ok {
		return
	}

	draws, err := h.drawService.ListPending(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch pending draws")
		return
	}
	respondWithDraws(w, draws)
}

// ListWins godoc
//
//	@Summary		List a user's wins
//	@Description	Get every draw the given user has won
//	@Tags			LuckyDraw
//	@Security		BearerAuth
//	@Produce		json
//	@Param			qq	path		string	true	"User QQ"
//	@Success		200	{object}	dto.ListDrawsResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Missing permission"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/lucky-draw/wins/{qq} [get]
func (h *DrawHandler) ListWins(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.authorize(w, r, PermLaunchDraw, PermViewLogs); !ok {
		return
	}

	draws, err := h.drawService.ListWins(r.Context(), chi.URLParam(r, "qq"))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch wins")
		return
	}
	respondWithDraws(w, draws)
}

// CreateDraw godoc
//
//	@Summary		Create a draw
//	@Description	Create a new lucky draw, optionally reserving stock of the creator's own shop item
//	@Tags			LuckyDraw
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateDrawRequestDTO	true	"Draw definition"
//	@Success		200		{object}	dto.CreateDrawResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Missing permission or foreign item"
//	@Failure		404		{object}	utils.Response	"Item not found"
//	@Failure		409		{object}	utils.Response	"Insufficient stock"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/lucky-draw/create [post]
func (h *DrawHandler) CreateDraw(w http.ResponseWriter, r *http.Request) {
	qq, ok := h.authorize(w, r, PermLaunchDraw)
	if !ok {
		return
	}

	var req dto.CreateDrawRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.CreatorQQ != qq {
		utils.RespondWithError(w, http.StatusForbidden, "Draws can only be created on your own behalf")
		return
	}

	id, err := h.drawService.Create(r.Context(), drawservice.CreateParams{
		CreatorQQ:    req.CreatorQQ,
		ItemID:       req.ItemID,
		Fitting:      req.Fitting,
		Num:          req.Num,
		MinLPRequire: req.MinLPRequire,
		PlanTime:     req.PlanTime,
		Description:  req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, drawservice.ErrInvalidQuantity), errors.Is(err, drawservice.ErrInvalidThreshold):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, drawservice.ErrItemNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, drawservice.ErrInsufficientStock):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, drawservice.ErrNotItemOwner):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.CreateDrawResponseDTO{
		Message: "Draw successfully created",
		ID:      id,
	})
}

// ExecuteDraw godoc
//
//	@Summary		Execute a draw
//	@Description	Run the draw now; a draw that already ran replays its committed outcome
//	@Tags			LuckyDraw
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Draw ID"
//	@Success		200	{object}	dto.ExecuteDrawResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid draw id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Missing permission"
//	@Failure		404	{object}	utils.Response	"Draw not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/lucky-draw/execute/{id} [post]
func (h *DrawHandler) ExecuteDraw(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.authorize(w, r, PermLaunchDraw); !ok {
		return
	}

	id, err := drawID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid draw id")
		return
	}

	result, err := h.drawService.Execute(r.Context(), id)
	if err != nil {
		if errors.Is(err, drawservice.ErrDrawNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if result.NoEligible {
		utils.RespondWithJSON(w, http.StatusOK, dto.ExecuteDrawResponseDTO{
			Message: "No qualifying participants",
		})
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.ExecuteDrawResponseDTO{
		Message: "Draw executed",
		Winners: result.Winners,
		Count:   len(result.Winners),
	})
}

// SetWinner godoc
//
//	@Summary		Set a winner manually
//	@Description	Administrative override: stamp a single winner without running selection
//	@Tags			LuckyDraw
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Draw ID"
//	@Param			request	body		dto.SetWinnerRequestDTO	true	"Winner"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Missing permission"
//	@Failure		404		{object}	utils.Response	"Draw not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/lucky-draw/winner/{id} [post]
func (h *DrawHandler) SetWinner(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.authorize(w, r, PermLaunchDraw); !ok {
		return
	}

	id, err := drawID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid draw id")
		return
	}

	var req dto.SetWinnerRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.WinnerQQ == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.drawService.SetWinner(r.Context(), id, req.WinnerQQ); err != nil {
		if errors.Is(err, drawservice.ErrDrawNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Winner successfully set"})
}

// DeleteDraw godoc
//
//	@Summary		Delete a draw
//	@Description	Delete a draw; a still-pending, item-linked draw returns its reserved stock
//	@Tags			LuckyDraw
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Draw ID"
//	@Success		200	{object}	dto.DeleteDrawResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid draw id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Missing permission"
//	@Failure		404	{object}	utils.Response	"Draw not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/lucky-draw/{id} [delete]
func (h *DrawHandler) DeleteDraw(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.authorize(w, r, PermLaunchDraw); !ok {
		return
	}

	id, err := drawID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid draw id")
		return
	}

	restored, err := h.drawService.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, drawservice.ErrDrawNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.DeleteDrawResponseDTO{
		Message:       "Draw successfully deleted",
		RestoredCount: restored,
	})
}
