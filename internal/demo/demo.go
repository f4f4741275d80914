// Package demo holds the fixed document shown off by the demo command.
package demo

// Document exercises every value kind along with the trailing comma and
// the irregular spacing the grammar tolerates.
const Document = `[
    "Dog",
    2, 
    false, 
    ["frank"], 
    {"sing": 55},
    null,
    ]`
