package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/landlord-rules/internal/card"
	"github.com/palemoky/landlord-rules/internal/logger"
	"github.com/palemoky/landlord-rules/internal/rule"
	"github.com/palemoky/landlord-rules/internal/table"
	"github.com/palemoky/landlord-rules/internal/ui/common"
)

// app 命令行各子命令共享的依赖
type app struct {
	manager    *table.Manager
	expiration time.Duration
	out        io.Writer
}

func newApp(manager *table.Manager, expiration time.Duration, out io.Writer) *app {
	return &app{manager: manager, expiration: expiration, out: out}
}

func (a *app) classify(input string) error {
	cards, err := card.ParseCards(input)
	if err != nil {
		return err
	}
	play, err := rule.NewPlay(cards)
	if err != nil {
		logger.LogDebug("classify %q: %v", input, err)
		return err
	}
	fmt.Fprintln(a.out, common.RenderPlay(play))
	return nil
}

// deal 通过管理器创建牌桌并发牌，save 为 true 时写入存储
func (a *app) deal(ctx context.Context, save bool) error {
	t := a.manager.Create()
	if err := t.Deal(); err != nil {
		return err
	}
	if save {
		if err := a.manager.Save(ctx, t.ID); err != nil {
			return err
		}
		logger.LogInfo("table %s saved", t.ID)
	}
	a.renderTable(t)
	return nil
}

// load 从存储恢复牌桌，并刷新快照过期时间
func (a *app) load(ctx context.Context, id string) error {
	t, err := a.manager.Load(ctx, id)
	if err != nil {
		return err
	}
	if err := a.manager.Touch(ctx, id, a.expiration); err != nil {
		return err
	}
	a.renderTable(t)
	return nil
}

func (a *app) list(ctx context.Context) error {
	n, err := a.manager.Recover(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, common.TitleStyle.Render(fmt.Sprintf("共 %d 张牌桌", n)))
	for _, t := range a.manager.Tables() {
		fmt.Fprintf(a.out, "%s  %s\n", t.ID, t.State())
	}
	return nil
}

func (a *app) renderTable(t *table.Table) {
	landlord, hasLandlord := t.Landlord()
	boxes := make([]string, 0, card.PlayerCount)
	for seat := range card.PlayerCount {
		title := fmt.Sprintf("座位 %d", seat)
		boxes = append(boxes, common.RenderHand(title, t.Hand(seat), hasLandlord && landlord == seat))
	}
	fmt.Fprintln(a.out, common.TitleStyle.Render(fmt.Sprintf("牌桌 %s (%s)", t.ID, t.State())))
	fmt.Fprintln(a.out, lipgloss.JoinVertical(lipgloss.Left, boxes...))
	if reserve := t.Reserve(); len(reserve) > 0 {
		fmt.Fprintln(a.out, common.BoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			common.TitleStyle.Render("底牌"), common.RenderCards(reserve))))
	}
}
