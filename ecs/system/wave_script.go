package system

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/horde/prefabs"
)

// waveScript rescales a wave per firing. Scripts read wave, elapsed, size
// and count, and may reassign size and count.
type waveScript struct {
	name     string
	compiled *tengo.Compiled
}

func compileWaveScript(name string) (*waveScript, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, err
	}

	script := tengo.NewScript(src)
	_ = script.Add("wave", 0)
	_ = script.Add("elapsed", 0)
	_ = script.Add("size", 0)
	_ = script.Add("count", 0)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("wave script %q: %w", name, err)
	}
	return &waveScript{name: name, compiled: compiled}, nil
}

// run returns the scaled size and count. Non-positive results fall back to
// the base values.
func (ws *waveScript) run(wave, elapsed, size, count int) (int, int, error) {
	if ws == nil || ws.compiled == nil {
		return size, count, nil
	}
	for name, v := range map[string]int{"wave": wave, "elapsed": elapsed, "size": size, "count": count} {
		if err := ws.compiled.Set(name, v); err != nil {
			return size, count, err
		}
	}
	if err := ws.compiled.Run(); err != nil {
		return size, count, fmt.Errorf("wave script %q: %w", ws.name, err)
	}

	outSize := ws.compiled.Get("size").Int()
	outCount := ws.compiled.Get("count").Int()
	if outSize <= 0 {
		outSize = size
	}
	if outCount <= 0 {
		outCount = count
	}
	return outSize, outCount, nil
}

type waveScriptCache struct {
	scripts map[string]*waveScript
	// failed scripts are logged once and then ignored until invalidated
	failed map[string]bool
}

func (c *waveScriptCache) get(name string) *waveScript {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	if c.scripts == nil {
		c.scripts = map[string]*waveScript{}
		c.failed = map[string]bool{}
	}
	if ws, ok := c.scripts[name]; ok {
		return ws
	}
	if c.failed[name] {
		return nil
	}
	ws, err := compileWaveScript(name)
	if err != nil {
		logf("waves", "load script: %v", err)
		c.failed[name] = true
		return nil
	}
	c.scripts[name] = ws
	return ws
}

func (c *waveScriptCache) invalidate() {
	c.scripts = nil
	c.failed = nil
}
