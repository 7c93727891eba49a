// Copyright (c) 2025
// Author: momentics <momentics@gmail.com>

// Package tcp builds the listening socket for hioload-echo with explicit
// control over address/port reuse and the listen backlog. Reuse options are
// applied before bind so a restarted server can rebind immediately and
// multiple listeners may share a port where the platform allows it.
package tcp
