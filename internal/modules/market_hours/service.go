package market_hours

import (
	"time"
)

// nextSessionLookahead bounds the search for the next open session.
const nextSessionLookahead = 7

// MarketHoursService provides market hours checking functionality
type MarketHoursService struct {
	session *Session // overrides every exchange's session when set
}

// NewMarketHoursService creates a service using each exchange's own session
func NewMarketHoursService() *MarketHoursService {
	return &MarketHoursService{}
}

// NewMarketHoursServiceWithSession creates a service where every exchange
// trades in the given session
func NewMarketHoursServiceWithSession(session Session) *MarketHoursService {
	return &MarketHoursService{session: &session}
}

func (s *MarketHoursService) exchange(name string) ExchangeConfig {
	config := getExchangeConfig(GetExchangeCode(name))
	if s.session != nil {
		config.Session = *s.session
	}
	return config
}

// IsMarketOpen checks if a market is open for trading at t
func (s *MarketHoursService) IsMarketOpen(exchangeName string, t time.Time) bool {
	return s.exchange(exchangeName).Session.Contains(t)
}

// GetOpenMarkets returns the codes of exchanges open at t, sorted.
func (s *MarketHoursService) GetOpenMarkets(t time.Time) []string {
	openMarkets := make([]string, 0)
	for _, code := range ExchangeCodes() {
		if s.IsMarketOpen(code, t) {
			openMarkets = append(openMarkets, code)
		}
	}
	return openMarkets
}

// GetMarketStatus returns detailed status for a market
func (s *MarketHoursService) GetMarketStatus(exchangeName string, t time.Time) MarketStatus {
	config := s.exchange(exchangeName)
	session := config.Session

	status := EvaluateMarketStatus(t, session)
	status.Exchange = config.Code

	local := t.In(session.Location)
	if status.Open {
		status.ClosesAt = session.Close.String()
		return status
	}

	if nextOpen, ok := findNextSession(session, local); ok {
		status.OpensAt = nextOpen.Format("15:04")
		if !sameDate(nextOpen, local) {
			status.OpensDate = nextOpen.Format("2006-01-02")
		}
	}

	return status
}

// findNextSession finds the next session open strictly after local.
func findNextSession(session Session, local time.Time) (time.Time, bool) {
	for i := 0; i <= nextSessionLookahead; i++ {
		day := local.AddDate(0, 0, i)
		if !isWeekday(day) {
			continue
		}
		openTime := session.Open.on(day)
		if openTime.After(local) {
			return openTime, true
		}
	}
	return time.Time{}, false
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
