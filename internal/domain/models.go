package domain

import (
	"strings"
	"time"
)

type DrawStatus int

const (
	DrawStatusPending    DrawStatus = 0
	DrawStatusExecuted   DrawStatus = 1
	DrawStatusUnfillable DrawStatus = 2
)

// WinnerSeparator joins multiple winners into the single winner_qq column.
const WinnerSeparator = ", "

type User struct {
	QQ           string `db:"qq"`
	MainRoleID   *int   `db:"main_role_id"`
	Nickname     string `db:"nickname"`
	PasswordHash string `db:"password"`
}

type Draw struct {
	ID           int64      `db:"id"`
	CreateTime   time.Time  `db:"create_time"`
	CreatorQQ    string     `db:"create_qq"`
	ItemID       *int64     `db:"item_id"`
	Fitting      *string    `db:"fitting"`
	Num          int        `db:"num"`
	MinLPRequire int        `db:"min_lp_require"`
	PlanTime     time.Time  `db:"plan_time"`
	Status       DrawStatus `db:"status"`
	WinnerQQ     *string    `db:"winner_qq"`
	Description  *string    `db:"description"`
}

// Winners splits the stored winner list back into individual identities.
func (d *Draw) Winners() []string {
	if d.WinnerQQ == nil || *d.WinnerQQ == "" {
		return nil
	}
	return strings.Split(*d.WinnerQQ, WinnerSeparator)
}

func JoinWinners(winners []string) string {
	return strings.Join(winners, WinnerSeparator)
}

type ShopItem struct {
	ID       int64  `db:"id"`
	Count    int    `db:"count"`
	Price    string `db:"price"`
	Name     string `db:"name"`
	Seller   string `db:"seller"`
	Location string `db:"location"`
}
