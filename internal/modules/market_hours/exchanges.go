package market_hours

import (
	"sort"
	"strings"
)

// DefaultExchange is used when an exchange name cannot be resolved.
const DefaultExchange = "XNSE"

// Indian equity cash session, shared by both exchanges.
const (
	IndiaTimezone = "Asia/Kolkata"
	IndiaOpen     = "09:15"
	IndiaClose    = "15:30"
)

// IndiaSession is the NSE/BSE regular session. Built at package init, so a
// runtime without tzdata fails on start.
var IndiaSession = MustSession(IndiaTimezone, IndiaOpen, IndiaClose)

// Exchange names and aliases mapped to exchange codes
var exchangeNameToCode = map[string]string{
	"NSE":      "XNSE",
	"NSE EQ":   "XNSE",
	"National": "XNSE",
	"BSE":      "XBOM",
	"Bombay":   "XBOM",
	"Mumbai":   "XBOM",
}

var exchangeConfigs = map[string]ExchangeConfig{
	"XNSE": {
		Code:    "XNSE",
		Name:    "National Stock Exchange of India",
		Session: IndiaSession,
	},
	"XBOM": {
		Code:    "XBOM",
		Name:    "BSE",
		Session: IndiaSession,
	},
}

// GetExchangeCode returns the exchange code for an exchange name or alias.
func GetExchangeCode(name string) string {
	normalized := strings.TrimSpace(name)

	if _, exists := exchangeConfigs[strings.ToUpper(normalized)]; exists {
		return strings.ToUpper(normalized)
	}

	for alias, code := range exchangeNameToCode {
		if strings.EqualFold(normalized, alias) {
			return code
		}
	}

	return DefaultExchange
}

// ExchangeCodes returns all configured exchange codes, sorted.
func ExchangeCodes() []string {
	codes := make([]string, 0, len(exchangeConfigs))
	for code := range exchangeConfigs {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

func getExchangeConfig(code string) ExchangeConfig {
	if config, ok := exchangeConfigs[code]; ok {
		return config
	}
	return exchangeConfigs[DefaultExchange]
}
