package supervisor

import (
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/v4/process"

	"github.com/tpen14/INTSYS-Finals/pkg/registry"
)

// stopByExecutableName is the degraded stop selector: terminate every
// process whose executable name matches the descriptor, narrowed by the
// command-line hint when one is set. It can hit unrelated processes that
// share the executable image and cannot tell two instances apart, which is
// why it only runs after PID-addressed termination has failed.
func (s *Supervisor) stopByExecutableName(desc registry.Descriptor) int {
	procs, err := process.Processes()
	if err != nil {
		log.Warn().Err(err).Msg("cannot enumerate processes for by-name stop")
		return 0
	}

	self := int32(os.Getpid())
	matched := 0
	for _, p := range procs {
		if p.Pid == self {
			continue
		}
		if !matchesDescriptor(p, desc) {
			continue
		}
		log.Warn().Str("service", desc.Name).Int32("pid", p.Pid).Str("exe", desc.ExeName).
			Msg("terminating process matched by executable name; match may be ambiguous")
		if err := p.Terminate(); err != nil {
			_ = p.Kill()
		}
		matched++
	}
	return matched
}

func matchesDescriptor(p *process.Process, desc registry.Descriptor) bool {
	name, err := p.Name()
	if err != nil {
		return false
	}
	if !strings.EqualFold(name, desc.ExeName) &&
		!strings.EqualFold(name, desc.ExeName+".exe") {
		return false
	}
	if desc.CmdlineHint == "" {
		return true
	}
	cmdline, err := p.Cmdline()
	if err != nil {
		return false
	}
	return strings.Contains(cmdline, desc.CmdlineHint)
}
