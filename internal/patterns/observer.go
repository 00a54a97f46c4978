package patterns

import (
	"fmt"
	"io"
)

// Observer receives stock price updates.
type Observer interface {
	Update(stock string, price float64)
}

// Stock is the subject; it notifies subscribers on every price change,
// in subscription order.
type Stock struct {
	name      string
	price     float64
	observers []Observer
}

// NewStock creates a stock with an initial price.
func NewStock(name string, price float64) *Stock {
	return &Stock{name: name, price: price}
}

// Price returns the current price.
func (s *Stock) Price() float64 {
	return s.price
}

// Subscribe registers o for future updates.
func (s *Stock) Subscribe(o Observer) {
	s.observers = append(s.observers, o)
}

// Unsubscribe removes the first registration of o.
func (s *Stock) Unsubscribe(o Observer) {
	for i, existing := range s.observers {
		if existing == o {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			return
		}
	}
}

// SetPrice updates the price and notifies every subscriber.
func (s *Stock) SetPrice(price float64) {
	s.price = price
	for _, o := range s.observers {
		o.Update(s.name, s.price)
	}
}

// StockTrader prints every update it receives.
type StockTrader struct {
	Name string
	w    io.Writer
}

// NewStockTrader creates a trader reporting to w.
func NewStockTrader(name string, w io.Writer) *StockTrader {
	return &StockTrader{Name: name, w: w}
}

// Update implements Observer.
func (t *StockTrader) Update(stock string, price float64) {
	fmt.Fprintf(t.w, "Trader %s: The price of %s has changed to %s.\n", t.Name, stock, formatAmount(price))
}

// RunObserverDemo moves the Apple stock twice with two traders subscribed.
func RunObserverDemo(w io.Writer) error {
	apple := NewStock("Apple", 150.00)

	apple.Subscribe(NewStockTrader("Alice", w))
	apple.Subscribe(NewStockTrader("Bob", w))

	apple.SetPrice(155.00)
	apple.SetPrice(160.00)
	return nil
}
