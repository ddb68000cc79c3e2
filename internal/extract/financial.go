package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/arunpathak904/univaegis-assignment/constants"
)

// Financial patterns. The bank-name rule is deliberately loose; bank
// statements rarely label their own issuer.
var (
	reBankName      = regexp.MustCompile(`(Bank of [A-Za-z ]+|[A-Za-z ]+ Bank)`)
	reAccountHolder = regexp.MustCompile(`(?i)(Account Holder|Account Name|A/c Name|A/c Holder)[:\s\-]{1,10}(.{2,80})`)
	reBalance       = regexp.MustCompile(`(?i)(Available Balance|Balance|FD Amount|Deposit Amount)[\s:\-]*([0-9,]+\.\d{2}|[0-9,]+)`)
	reDateDMY       = regexp.MustCompile(`\b(\d{2}/\d{2}/\d{4})\b`)
	reDateISO       = regexp.MustCompile(`\b(20[0-9]{2}-\d{2}-\d{2})\b`)
)

var (
	bankNameRules = []fieldRule{
		{re: reBankName, parse: trimmedGroup(0)},
	}
	accountHolderRules = []fieldRule{
		{re: reAccountHolder, parse: trimmedGroup(2)},
	}
	balanceRules = []fieldRule{
		{re: reBalance, parse: parseBalance},
	}
	dateRules = []fieldRule{
		{re: reDateDMY, parse: trimmedGroup(1)},
		{re: reDateISO, parse: trimmedGroup(1)},
	}
)

// parseBalance strips digit-grouping commas before the numeric parse;
// an unparsable amount resolves to nil, not an error.
func parseBalance(m []string) any {
	amount := strings.ReplaceAll(m[2], ",", "")
	v, err := strconv.ParseFloat(amount, 64)
	if err != nil {
		return nil
	}
	return v
}

// financialFields extracts bank-statement fields: bank name, account
// holder, available balance (or FD amount), and one main date.
func financialFields(t string) Fields {
	return Fields{
		FieldDocType:          string(constants.DocTypeFinancial),
		FieldBankName:         resolve(t, bankNameRules),
		FieldAccountHolder:    resolve(t, accountHolderRules),
		FieldAvailableBalance: resolve(t, balanceRules),
		FieldDate:             resolve(t, dateRules),
	}
}
