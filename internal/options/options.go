// Package options contains the program options.
package options

// DefaultClockHz is the CPU clock rate used when none is given. CHIP-8
// defines no clock rate of its own; 700Hz runs most programs well.
const DefaultClockHz = 700

// Program options of the virtual machine.
type Program struct {
	Input  string // ROM file to run or scan
	Output string // scan output file, stdout if empty

	ClockHz float64 // CPU clock rate in Hz

	Scan    bool // disassemble the program instead of running it
	Verbose bool // trace each executed instruction
	Quiet   bool // only log errors

	ShiftQuirk bool // legacy shift behavior: 8XY6/8XYE source from VY
}
