package dto

import "time"

type CreateDrawRequestDTO struct {
	CreatorQQ    string    `json:"create_qq" example:"10001"`
	ItemID       *int64    `json:"item_id,omitempty" example:"7"`
	Fitting      *string   `json:"fitting,omitempty" example:"ship fitting"`
	Num          int       `json:"num" example:"3"`
	MinLPRequire int       `json:"min_lp_require" example:"100"`
	PlanTime     time.Time `json:"plan_time" example:"2026-01-02T20:00:00+08:00"`
	Description  *string   `json:"description,omitempty"`
}

type CreateDrawResponseDTO struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

type ExecuteDrawResponseDTO struct {
	Message string   `json:"message"`
	Winners []string `json:"winners,omitempty"`
	Count   int      `json:"count"`
}

type SetWinnerRequestDTO struct {
	WinnerQQ string `json:"winner_qq" example:"10002"`
}

type DeleteDrawResponseDTO struct {
	Message       string `json:"message"`
	RestoredCount int    `json:"restored_count"`
}

type DrawResponseDTO struct {
	ID           int64     `json:"id"`
	CreateTime   time.Time `json:"create_time"`
	CreatorQQ    string    `json:"create_qq"`
	ItemID       *int64    `json:"item_id,omitempty"`
	Fitting      *string   `json:"fitting,omitempty"`
	Num          int       `json:"num"`
	MinLPRequire int       `json:"min_lp_require"`
	PlanTime     time.Time `json:"plan_time"`
	Status       int       `json:"status"`
	Winners      []string  `json:"winners,omitempty"`
	Description  *string   `json:"description,omitempty"`
}

type ListDrawsResponseDTO struct {
	Draws []DrawResponseDTO `json:"draws"`
}
