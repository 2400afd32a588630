package stdlib

import resynth "github.com/rapid7/resynth-go"

// Root is the top-level module registry passed to resynth.NewInterpreter.
// Each entry here is one name a script's import statement can resolve,
// built once at init time the same way the teacher's driver builds its
// static lookup tables.
var Root = resynth.NewModule("stdlib", map[string]resynth.Symbol{
	"tcp":     resynth.ModuleSymbol(TCP),
	"udp":     resynth.ModuleSymbol(UDP),
	"icmp":    resynth.ModuleSymbol(ICMP),
	"ipv4":    resynth.ModuleSymbol(IPV4),
	"dns":     resynth.ModuleSymbol(DNS),
	"dhcp":    resynth.ModuleSymbol(DHCP),
	"arp":     resynth.ModuleSymbol(ARP),
	"gre":     resynth.ModuleSymbol(GRE),
	"vxlan":   resynth.ModuleSymbol(VXLAN),
	"erspan1": resynth.ModuleSymbol(ERSPAN1),
	"erspan2": resynth.ModuleSymbol(ERSPAN2),
	"eth":     resynth.ModuleSymbol(ETH),
	"tls":     resynth.ModuleSymbol(TLS),
	"netbios": resynth.ModuleSymbol(NETBIOS),
})
