// Package harness runs scripted conversations against the target.
//
// The general model is:
//
// 1. Each invocation launches a fresh child process (normally docker run
// with an attached stdin) described by a Target.
//
// 2. A line reader goroutine owns the child's stdout, decoding each line
// and storing every reply that carries an id in a ResultStore. Anything
// else the child prints is dropped.
//
// 3. The call driver writes the scripted messages to the child's stdin with
// a short pause between writes, waits (with a deadline) for the reply of
// interest, asks the child to terminate, and reports the extracted text or
// the Missing sentinel.
//
// Nothing here knows what the tools under test do; that knowledge lives in
// the mcptests package.
package harness
