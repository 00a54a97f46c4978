package patterns

import (
	"fmt"
	"io"
	"sync"
)

// DatabaseConnection is the shared resource handed out by ConnectionProvider.
type DatabaseConnection struct {
	w io.Writer
}

// Query runs a statement on the connection.
func (c *DatabaseConnection) Query(sql string) {
	fmt.Fprintf(c.w, "Executing query: %s\n", sql)
}

// ConnectionProvider opens a single connection on first use and returns it
// to every caller. It is safe for concurrent use.
type ConnectionProvider struct {
	once sync.Once
	conn *DatabaseConnection
	w    io.Writer
}

// NewConnectionProvider creates a provider whose connection reports to w.
func NewConnectionProvider(w io.Writer) *ConnectionProvider {
	return &ConnectionProvider{w: w}
}

// Instance returns the connection, opening it on the first call.
func (p *ConnectionProvider) Instance() *DatabaseConnection {
	p.once.Do(func() {
		fmt.Fprintln(p.w, "Establishing Database Connection...")
		p.conn = &DatabaseConnection{w: p.w}
	})
	return p.conn
}

// RunSingletonDemo fetches the connection twice and checks both are the same.
func RunSingletonDemo(w io.Writer) error {
	provider := NewConnectionProvider(w)

	connection1 := provider.Instance()
	connection1.Query("SELECT * FROM Users")

	connection2 := provider.Instance()
	connection2.Query("SELECT * FROM Orders")

	if connection1 == connection2 {
		fmt.Fprintln(w, "Same instance")
	} else {
		fmt.Fprintln(w, "Different instances")
	}
	return nil
}
