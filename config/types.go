// Package config provides live-tunable configuration cells for the
// scheduler and the domain packages built on top of it: typed values that
// can be read and written concurrently, with optional hooks run before and
// after a new value is stored.
package config

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
)

// Value is the dynamic type a cell accepts through Set and returns from Get.
type Value interface{}

// cell is the common surface every typed configuration value implements.
type cell interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
	Reset() error
}

// Bool is a live-tunable boolean value.
type Bool struct {
	value    atomic.Value // bool
	hookPre  func(Value) error
	hookPost func(Value) error
}

func (c *Bool) String() string {
	ov := c.value.Load()
	if ov == nil {
		return "false"
	}
	return fmt.Sprintf("%v", ov.(bool))
}

// Set accepts a bool, or a string ("true", case-insensitive, for true,
// anything else for false).
func (c *Bool) Set(v Value) error {
	var nv bool
	switch v := v.(type) {
	case bool:
		nv = v
	case string:
		nv = strings.EqualFold(v, "true")
	default:
		return fmt.Errorf("set: cannot convert %T to config.Bool", v)
	}

	if c.hookPre != nil {
		if err := c.hookPre(nv); err != nil {
			return err
		}
	}
	c.value.Store(nv)
	if c.hookPost != nil {
		if err := c.hookPost(nv); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the current value, false if never set.
func (c *Bool) Get() Value {
	ov := c.value.Load()
	if ov == nil {
		return false
	}
	return ov.(bool)
}

// Reset sets the value back to false.
func (c *Bool) Reset() error {
	return c.Set(false)
}

// SetHookPre installs a callback run just before a new value is stored. The
// hook's error, if any, aborts the Set before the value is stored.
func (c *Bool) SetHookPre(f func(Value) error) { c.hookPre = f }

// SetHookPost installs a callback run just after a new value is stored.
func (c *Bool) SetHookPost(f func(Value) error) { c.hookPost = f }

// Int is a live-tunable integer value.
type Int struct {
	value    atomic.Value // int
	hookPre  func(Value) error
	hookPost func(Value) error
}

func (c *Int) String() string {
	ov := c.value.Load()
	if ov == nil {
		return "0"
	}
	return fmt.Sprintf("%d", ov.(int))
}

// Set accepts an int, int32, int64, or a string parseable as an integer.
func (c *Int) Set(v Value) error {
	var nv int
	switch v := v.(type) {
	case int:
		nv = v
	case int32:
		nv = int(v)
	case int64:
		nv = int(v)
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("set: cannot convert %T to config.Int: %w", v, err)
		}
		nv = n
	default:
		return fmt.Errorf("set: cannot convert %T to config.Int", v)
	}

	if c.hookPre != nil {
		if err := c.hookPre(nv); err != nil {
			return err
		}
	}
	c.value.Store(nv)
	if c.hookPost != nil {
		if err := c.hookPost(nv); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the current value, zero if never set.
func (c *Int) Get() Value {
	ov := c.value.Load()
	if ov == nil {
		return 0
	}
	return ov.(int)
}

// Reset sets the value back to zero.
func (c *Int) Reset() error {
	return c.Set(0)
}

// SetHookPre installs a callback run just before a new value is stored.
func (c *Int) SetHookPre(f func(Value) error) { c.hookPre = f }

// SetHookPost installs a callback run just after a new value is stored.
func (c *Int) SetHookPost(f func(Value) error) { c.hookPost = f }

// Float is a live-tunable floating-point value.
type Float struct {
	value    atomic.Value // float64
	hookPre  func(Value) error
	hookPost func(Value) error
}

func (c *Float) String() string {
	ov := c.value.Load()
	if ov == nil {
		return "0.000"
	}
	return fmt.Sprintf("%.3f", ov.(float64))
}

// Set accepts a float64, float32, int, or a string parseable as a float.
func (c *Float) Set(v Value) error {
	var nv float64
	switch v := v.(type) {
	case float64:
		nv = v
	case float32:
		nv = float64(v)
	case int:
		nv = float64(v)
	case string:
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("set: cannot convert %T to config.Float: %w", v, err)
		}
		nv = n
	default:
		return fmt.Errorf("set: cannot convert %T to config.Float", v)
	}

	if c.hookPre != nil {
		if err := c.hookPre(nv); err != nil {
			return err
		}
	}
	c.value.Store(nv)
	if c.hookPost != nil {
		if err := c.hookPost(nv); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the current value, zero if never set.
func (c *Float) Get() Value {
	ov := c.value.Load()
	if ov == nil {
		return 0.0
	}
	return ov.(float64)
}

// Reset sets the value back to zero.
func (c *Float) Reset() error {
	return c.Set(0.0)
}

// SetHookPre installs a callback run just before a new value is stored.
func (c *Float) SetHookPre(f func(Value) error) { c.hookPre = f }

// SetHookPost installs a callback run just after a new value is stored.
func (c *Float) SetHookPost(f func(Value) error) { c.hookPost = f }

// String is a live-tunable string value, optionally capped at a maximum
// length.
type String struct {
	maxLen   int
	value    atomic.Value // string
	hookPre  func(Value) error
	hookPost func(Value) error
}

func (c *String) String() string {
	ov := c.value.Load()
	if ov == nil {
		return ""
	}
	return ov.(string)
}

// SetMaxLen caps future values at max bytes, cropping the current value
// immediately if it now exceeds the cap. A non-positive max removes the cap.
func (c *String) SetMaxLen(max int) {
	c.maxLen = max

	ov := c.value.Load()
	if ov == nil {
		return
	}
	if c.maxLen > 0 && len(ov.(string)) > c.maxLen {
		c.value.Store(ov.(string)[:c.maxLen])
	}
}

// Set accepts any value, stringified with fmt.Sprintf("%s", v).
func (c *String) Set(v Value) error {
	nv := fmt.Sprintf("%s", v)
	if c.maxLen > 0 && len(nv) > c.maxLen {
		nv = nv[:c.maxLen]
	}

	if c.hookPre != nil {
		if err := c.hookPre(nv); err != nil {
			return err
		}
	}
	c.value.Store(nv)
	if c.hookPost != nil {
		if err := c.hookPost(nv); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the current value, the empty string if never set.
func (c *String) Get() Value {
	return c.String()
}

// Reset sets the value back to the empty string.
func (c *String) Reset() error {
	return c.Set("")
}

// SetHookPre installs a callback run just before a new value is stored.
func (c *String) SetHookPre(f func(Value) error) { c.hookPre = f }

// SetHookPost installs a callback run just after a new value is stored.
func (c *String) SetHookPost(f func(Value) error) { c.hookPost = f }

// Generic wraps an arbitrary get/set pair behind the cell interface, for
// values that don't fit one of the atomic-backed types above — a scheduler
// strategy selector backed by a live Scheduler swap, for instance.
type Generic struct {
	crit sync.Mutex
	set  func(Value) error
	get  func() Value

	mostRecentSetValue Value
}

// GenericUndefined is a sentinel get() can return to mean "unavailable right
// now, report the most recently set value instead".
const GenericUndefined = "config.GenericUndefined"

// NewGeneric builds a Generic cell from a pair of accessor functions.
func NewGeneric(set func(Value) error, get func() Value) *Generic {
	return &Generic{set: set, get: get}
}

func (c *Generic) String() string {
	return fmt.Sprintf("%v", c.Get())
}

// Set invokes the wrapped setter under a mutex.
func (c *Generic) Set(v Value) error {
	c.crit.Lock()
	defer c.crit.Unlock()

	c.mostRecentSetValue = v
	return c.set(v)
}

// Get invokes the wrapped getter under a mutex, substituting the most
// recently set value if the getter reports GenericUndefined.
func (c *Generic) Get() Value {
	c.crit.Lock()
	defer c.crit.Unlock()

	v := c.get()
	if v == GenericUndefined {
		v = c.mostRecentSetValue
	} else {
		c.mostRecentSetValue = v
	}
	return v
}

// Reset sets the value back to the empty string.
func (c *Generic) Reset() error {
	return c.Set("")
}
