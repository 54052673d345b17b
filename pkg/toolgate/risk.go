package toolgate

import (
	"encoding/json"
	"strings"

	"github.com/steward-io/steward/pkg/models"
)

// Bash risk classifications.
const (
	BashSafe        = "safe"
	BashDestructive = "destructive"
)

// toolRisk is one row of the tool risk table.
type toolRisk struct {
	Severity    string
	BlastRadius string
	Category    string
}

// toolRiskTable maps tool names to their severity, blast radius, and
// category. Tools not listed fall back to low/small execution risk.
var toolRiskTable = map[string]toolRisk{
	"Bash":         {Severity: models.SeverityHigh, BlastRadius: models.BlastLarge, Category: "execution"},
	"Write":        {Severity: models.SeverityMedium, BlastRadius: models.BlastMedium, Category: "mutation"},
	"Edit":         {Severity: models.SeverityMedium, BlastRadius: models.BlastMedium, Category: "mutation"},
	"NotebookEdit": {Severity: models.SeverityMedium, BlastRadius: models.BlastMedium, Category: "mutation"},
	"WebFetch":     {Severity: models.SeverityLow, BlastRadius: models.BlastSmall, Category: "network"},
	"WebSearch":    {Severity: models.SeverityLow, BlastRadius: models.BlastSmall, Category: "network"},
}

var defaultToolRisk = toolRisk{Severity: models.SeverityLow, BlastRadius: models.BlastSmall, Category: "execution"}

// riskFor returns the risk row for a tool name.
func riskFor(toolName string) toolRisk {
	if r, ok := toolRiskTable[toolName]; ok {
		return r
	}
	return defaultToolRisk
}

// bashAllowTokens are first tokens of commands considered safe to run
// without review. The table is deliberately explicit; extending it is a
// data change, not a logic change.
var bashAllowTokens = map[string]bool{
	"ls": true, "cat": true, "head": true, "tail": true, "grep": true,
	"rg": true, "find": true, "echo": true, "pwd": true, "wc": true,
	"which": true, "whoami": true, "env": true, "printenv": true,
	"date": true, "ps": true, "df": true, "du": true, "file": true,
	"stat": true, "uname": true, "id": true, "tree": true, "jq": true,
	"sort": true, "uniq": true, "cut": true, "tr": true, "diff": true,
	"sed": true, "awk": true, "git": true, "go": true, "node": true,
	"npm": true, "yarn": true, "pnpm": true, "python": true,
	"python3": true, "pip": true, "make": true, "cargo": true,
	"pytest": true, "mkdir": true, "touch": true, "cp": true,
}

// bashDenyTokens mark a command destructive when they appear anywhere in the
// first command of a chain, regardless of the allow list.
var bashDenyTokens = map[string]bool{
	"rm": true, "rmdir": true, "dd": true, "mkfs": true, "shred": true,
	"truncate": true, "mv": true, "chmod": true, "chown": true,
	"kill": true, "pkill": true, "killall": true, "sudo": true,
	"su": true, "shutdown": true, "reboot": true, "halt": true,
	"eval": true, "exec": true, "curl": true, "wget": true,
	"--force": true, "-rf": true, "-fr": true,
}

// chainSeparators split a shell line into its chained commands.
var chainSeparators = []string{"&&", "||", ";", "|", "\n"}

// classifyBashCommand scans the first command of a chain against the deny
// and allow tables. Deny tokens win, then an allow-listed first token is
// safe, and anything unrecognized is destructive.
func classifyBashCommand(command string) string {
	first := strings.TrimSpace(command)
	for _, sep := range chainSeparators {
		if idx := strings.Index(first, sep); idx >= 0 {
			first = first[:idx]
		}
	}

	tokens := strings.Fields(first)
	// Leading environment assignments are not the command.
	for len(tokens) > 0 && strings.Contains(tokens[0], "=") {
		tokens = tokens[1:]
	}
	if len(tokens) == 0 {
		return BashDestructive
	}
	for _, tok := range tokens {
		if bashDenyTokens[tok] {
			return BashDestructive
		}
	}
	if bashAllowTokens[tokens[0]] {
		return BashSafe
	}
	return BashDestructive
}

// bashRiskFromArgs extracts the command string from Bash tool args and
// classifies it. Missing or malformed args classify as destructive.
func bashRiskFromArgs(toolArgs json.RawMessage) string {
	var args struct {
		Command string `json:"command"`
	}
	if err := json.Unmarshal(toolArgs, &args); err != nil || args.Command == "" {
		return BashDestructive
	}
	return classifyBashCommand(args.Command)
}

// autoApproveThresholds are the adaptive-mode trust scores required per risk
// bucket.
const (
	thresholdSmall            = 30
	thresholdMedium           = 50
	thresholdLargeSafe        = 60
	thresholdLargeDestructive = 80
)

// requiredTrust returns the adaptive-mode trust threshold for a blast radius
// and bash risk.
func requiredTrust(blastRadius, bashRisk string) int {
	switch blastRadius {
	case models.BlastTrivial, models.BlastSmall:
		return thresholdSmall
	case models.BlastMedium:
		return thresholdMedium
	case models.BlastLarge:
		if bashRisk == BashDestructive {
			return thresholdLargeDestructive
		}
		return thresholdLargeSafe
	default:
		return thresholdLargeDestructive
	}
}
