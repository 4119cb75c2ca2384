// Package command builds the PowerShell command lines sent to the OS command gateway.
//
// Every caller-supplied string (adapter names in particular) is emitted as a
// single PowerShell single-quoted literal, so it can never terminate the
// literal, start a new statement or trigger variable expansion.
package command

import (
	"strconv"
	"strings"
)

// singleQuotes are the characters PowerShell accepts as single-quote delimiters.
// Each is escaped by doubling it inside a single-quoted literal.
var singleQuotes = []rune{'\'', '‘', '’', '‚', '‛'}

// Literal quotes s as a PowerShell single-quoted string literal.
func Literal(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('\'')
	for _, r := range s {
		for _, q := range singleQuotes {
			if r == q {
				b.WriteRune(r)
				break
			}
		}
		b.WriteRune(r)
	}
	b.WriteByte('\'')
	return b.String()
}

// ListAdapters enumerates adapters as JSON records with Name, Status and DisplayName.
func ListAdapters() string {
	return "Get-NetAdapter | Select-Object " +
		"@{Name='Name';Expression={$_.Name}}, " +
		"@{Name='Status';Expression={[string]$_.Status}}, " +
		"@{Name='DisplayName';Expression={$_.InterfaceDescription}} " +
		"| ConvertTo-Json -Compress"
}

// AddressQuery lists the IPv4 addresses and prefix lengths of an adapter as JSON.
func AddressQuery(adapter string) string {
	return "Get-NetIPAddress -InterfaceAlias " + Literal(adapter) +
		" -AddressFamily IPv4 | Select-Object IPAddress, PrefixLength | ConvertTo-Json -Compress"
}

// DefaultRouteQuery lists the default-route next hops of an adapter, one per line.
func DefaultRouteQuery(adapter string) string {
	return "Get-NetRoute -InterfaceAlias " + Literal(adapter) +
		" -DestinationPrefix '0.0.0.0/0' | Select-Object -ExpandProperty NextHop"
}

// DNSQuery lists the IPv4 DNS servers of an adapter, one per line, in priority order.
func DNSQuery(adapter string) string {
	return "Get-DnsClientServerAddress -InterfaceAlias " + Literal(adapter) +
		" -AddressFamily IPv4 | Select-Object -ExpandProperty ServerAddresses"
}

// SetAddress sets a static address and mask, plus the default gateway when gateway is non-empty.
func SetAddress(adapter, address, mask, gateway string) string {
	args := []string{Literal(address), Literal(mask)}
	if gateway != "" {
		args = append(args, Literal(gateway))
	}
	return netsh("interface ip set address "+nameArg(adapter)+" static", args...)
}

// SetPrimaryDNS replaces the adapter's DNS servers with a single static server.
func SetPrimaryDNS(adapter, server string) string {
	return netsh("interface ip set dns "+nameArg(adapter)+" static", Literal(server))
}

// AddDNS adds a DNS server at the given priority index.
func AddDNS(adapter, server string, index int) string {
	return netsh("interface ip add dns "+nameArg(adapter), Literal(server), Literal("index="+strconv.Itoa(index)))
}

// nameArg passes name=<adapter> to netsh as one argument.
func nameArg(adapter string) string {
	return Literal("name=" + adapter)
}

// netsh runs netsh natively and exits with its exit code.
// netsh signals failure only through $LASTEXITCODE.
func netsh(verb string, args ...string) string {
	cmd := "& netsh " + verb
	if len(args) > 0 {
		cmd += " " + strings.Join(args, " ")
	}
	return cmd + "; exit $LASTEXITCODE"
}
