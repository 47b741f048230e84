// internal/platform/config/help.go
package config

import (
	"fmt"
	"os"
	"runtime"
)

const helpText = `
Laelaps - Multi-Source OSINT Probe Engine

USAGE:
  laelaps [options]
  laelaps -m <mode> [subject options]

IMPORTANT:
  Use double dash (--) for long flag names: --mode, --username, --phone
  Use single dash (-) for short flags: -m, -u, -e

  ❌ WRONG:  laelaps -username amanda
  ✓  RIGHT:  laelaps --username amanda
  ✓  RIGHT:  laelaps -u amanda

MODES (-m, --mode):
  investigate    Multi-step pipeline: username variations, email probes,
                 name/location lookups (default)
  sweep          Single concurrent round of every probe matching the subject
  probe          Run one probe by name against the subject (--probe)
  serve          Expose the engine over HTTP (see SERVER OPTIONS)
  health         Report availability of every registered probe and exit

SUBJECT OPTIONS:
  -n, --name string        Full name (e.g., "Amanda Driskell")
  -u, --username string    Known alias or handle
  -e, --email string       Email address
  --phone string           Phone number (digits, dashes and +1 accepted)
  -d, --domain string      Associated domain (e.g., example.com)
  --city string            City, used for link generation
  --state string           Two-letter state code, used for court lookups

CORE OPTIONS:
  -m, --mode string        Operation mode (default: "investigate")
  -w, --workers int        Max concurrent probes per round (default: 4)
  -o, --out string         Output directory (default: "laelaps_out")
  --probe string           Probe name for probe mode (e.g., sherlock)
  --max-variations int     Username variations tried in investigate mode (default: 5)

PROBE OPTIONS:
  --probes.sherlock                Enable sherlock username probe (default: true)
  --probes.sherlock.priority int   Set sherlock priority (default: 10)

  --probes.holehe                  Enable holehe email probe (default: true)
  --probes.holehe.priority int     Set holehe priority (default: 10)

  --probes.maigret                 Enable maigret username probe (default: true)
  --probes.courtlistener           Enable CourtListener records probe (default: true)
  --probes.weblinks                Enable manual-check link generator (default: true)

  The same pair of flags exists for every registered probe:
  socialscan, socialanalyzer, h8mail, theharvester, phoneinfoga.

OUTPUT OPTIONS:
  -q, --quiet              Disable table output, JSON only (default: false)

SERVER OPTIONS:
  --server.addr string     HTTP listen address for serve mode (default: ":8000")

INFO:
  -v, --version            Print version information and exit
  -h, --help               Show this help message

EXAMPLES:
  Full investigation from a name and email:
    laelaps -n "Amanda Driskell" -e amanda@example.com --city "New Orleans" --state LA

  Single sweep over a username:
    laelaps -m sweep -u amandad

  One probe only:
    laelaps -m probe --probe holehe -e amanda@example.com

  Quiet mode (JSON output only):
    laelaps -m sweep -u amandad -q

  Disable slow probes:
    laelaps -m sweep -u amandad --probes.maigret=false --probes.socialanalyzer=false

  HTTP server:
    laelaps -m serve --server.addr :8000

ENVIRONMENT VARIABLES:
  Most flags can be set via environment variables with LAELAPS_ prefix:

  LAELAPS_MODE=sweep                Operation mode
  LAELAPS_WORKERS=8                 Max concurrent probes
  LAELAPS_MAX_VARIATIONS=3          Username variations in investigate mode
  LAELAPS_OUTPUT_DIR=/path          Output directory
  LAELAPS_SERVER_ADDR=:8000         HTTP listen address
  LAELAPS_CONFIG=/path/to.yaml      Config file path (default: laelaps.yaml)
  LAELAPS_OUTPUTS_TABLE_DISABLED=1  Quiet mode

  Probe-specific (replace SHERLOCK with probe name):
  LAELAPS_PROBES_SHERLOCK_ENABLED=false
  LAELAPS_PROBES_SHERLOCK_PRIORITY=20
  LAELAPS_PROBES_SHERLOCK_TIMEOUT=90

  API keys:
  COURTLISTENER_API_KEY=...         Token for the CourtListener REST API

  Note: CLI flags override environment variables, which override the
  config file.

PROBE KINDS:
  CLI probes (sherlock, maigret, holehe, socialscan, socialanalyzer,
  h8mail, theharvester, phoneinfoga):
    - Wrap locally installed tools; a missing binary marks the probe
      unavailable without failing the round
    - Install them with pipx (e.g., pipx install sherlock-project)

  API probes (courtlistener):
    - Talk HTTP to public endpoints, no local install needed

  Static probes (weblinks):
    - Generate manual-check URLs without touching the network

OUTPUT:
  Laelaps writes JSON into the output directory after every round:
  - Aggregated findings with platform, URL, status, sources and tags
  - Per-probe outcome summaries including timeouts and errors
  - Table output to stdout (unless --quiet)

For more information and documentation:
  https://github.com/yourusername/laelaps
`

// PrintHelp prints the custom help message and exits.
func PrintHelp() {
	fmt.Fprint(os.Stdout, helpText)
	os.Exit(0)
}

// PrintVersion prints version information and exits.
func PrintVersion(version, commit, date string) {
	fmt.Printf("Laelaps %s\n", version)
	fmt.Printf("  Commit:  %s\n", commit)
	fmt.Printf("  Built:   %s\n", date)
	fmt.Printf("  Go:      %s\n", getGoVersion())
	os.Exit(0)
}

func getGoVersion() string {
	return runtime.Version()
}
