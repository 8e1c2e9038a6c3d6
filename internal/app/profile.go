package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/triptych/internal/resource"
	"github.com/Makepad-fr/triptych/internal/state"
	"github.com/Makepad-fr/triptych/internal/userapi"
)

// FetchUserFunc is the one external call the profile screen makes.
type FetchUserFunc func(ctx context.Context, id int64) (userapi.User, error)

// userFetchedMsg carries a settled fetch back into the update loop. The
// token ties it to the attempt that issued it; the resource drops anything
// stale.
type userFetchedMsg struct {
	token uint64
	user  userapi.User
	err   error
}

// profileScreen owns one cell holding the fetch lifecycle. The fetch runs
// as a command off the update goroutine; only its result message touches
// state, so all mutation stays on the loop.
type profileScreen struct {
	res    *state.Cell[*resource.Resource[userapi.User]]
	fetch  FetchUserFunc
	userID int64

	spin spinner.Model
}

func newProfileScreen(fetch FetchUserFunc, userID int64) *profileScreen {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = accentStyle
	return &profileScreen{
		res:    state.NewCell(resource.New[userapi.User]()),
		fetch:  fetch,
		userID: userID,
		spin:   sp,
	}
}

// start kicks off a fetch attempt and returns the commands driving it.
func (p *profileScreen) start() tea.Cmd {
	next, token := p.res.Get().Start()
	if next == p.res.Get() {
		// already loading; the live attempt stays the one that counts
		return nil
	}
	p.res.Set(next)
	return tea.Batch(p.spin.Tick, p.fetchCmd(token))
}

func (p *profileScreen) fetchCmd(token uint64) tea.Cmd {
	fetch, id := p.fetch, p.userID
	return func() tea.Msg {
		u, err := fetch(context.Background(), id)
		return userFetchedMsg{token: token, user: u, err: err}
	}
}

// settle applies a fetch result. Stale or out-of-protocol completions come
// back as the same resource identity and are not republished.
func (p *profileScreen) settle(msg userFetchedMsg) {
	cur := p.res.Get()
	var next *resource.Resource[userapi.User]
	if msg.err != nil {
		next = cur.Reject(msg.token, msg.err.Error())
	} else {
		next = cur.Resolve(msg.token, msg.user)
	}
	if next != cur {
		p.res.Set(next)
	}
}

// retry restarts the lifecycle after a failure. It is the same machine
// re-entering loading, not a separate state.
func (p *profileScreen) retry() tea.Cmd { return p.start() }

func (p *profileScreen) capturing() bool { return false }

func (p *profileScreen) update(msg tea.Msg) (tea.Cmd, bool) {
	switch x := msg.(type) {
	case userFetchedMsg:
		p.settle(x)
		return nil, true
	case spinner.TickMsg:
		if p.res.Get().Status != resource.StatusLoading {
			return nil, true
		}
		var cmd tea.Cmd
		p.spin, cmd = p.spin.Update(x)
		return cmd, true
	case tea.KeyMsg:
		switch x.String() {
		case "enter":
			if p.res.Get().Status == resource.StatusIdle {
				return p.start(), true
			}
		case "r":
			if p.res.Get().Status == resource.StatusError {
				return p.retry(), true
			}
		}
	}
	return nil, false
}

func (p *profileScreen) view() string {
	r := p.res.Get()
	lines := []string{titleStyle.Render("Profile"), ""}

	switch r.Status {
	case resource.StatusIdle:
		lines = append(lines, mutedStyle.Render("press enter to load the profile"))
	case resource.StatusLoading:
		lines = append(lines, fmt.Sprintf("%s Loading profile...", p.spin.View()))
	case resource.StatusSuccess:
		u := r.Payload
		lines = append(lines,
			fmt.Sprintf("%s  %s", titleStyle.Render(u.Name), mutedStyle.Render(fmt.Sprintf("#%d", u.ID))),
			"",
			fmt.Sprintf("email:   %s", accentStyle.Render(u.Email)),
			fmt.Sprintf("phone:   %s", u.Phone),
			fmt.Sprintf("website: %s", u.Website),
			"",
			fmt.Sprintf("%s %s", u.Company.Name, mutedStyle.Render("— "+u.Company.CatchPhrase)),
		)
	case resource.StatusError:
		lines = append(lines,
			errorStyle.Render("✖ "+r.Err),
			"",
			helpStyle.Render("press r to retry"),
		)
	}
	return strings.Join(lines, "\n")
}
