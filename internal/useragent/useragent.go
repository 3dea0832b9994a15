// Package useragent manages the rotating User-Agent pool used for outgoing
// requests.
package useragent

// defaultAgents is a small pool of common desktop browser agents.
var defaultAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.4 Safari/605.1.15",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:125.0) Gecko/20100101 Firefox/125.0",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36",
}

// Manager selects User-Agent strings from a fixed pool using an injected
// random index function.
type Manager struct {
	agents []string
	pick   func(n int) int
}

// New creates a Manager. If no agents are given the default pool is used.
// pick must return an index in [0, n).
func New(pick func(n int) int, agents ...string) *Manager {
	pool := agents
	if len(pool) == 0 {
		pool = defaultAgents
	}
	return &Manager{agents: pool, pick: pick}
}

// Random returns one agent from the pool.
func (m *Manager) Random() string {
	return m.agents[m.pick(len(m.agents))]
}

// Agents returns the pool contents.
func (m *Manager) Agents() []string {
	out := make([]string, len(m.agents))
	copy(out, m.agents)
	return out
}
