// Package functests drives the running application through a headless browser,
// the way a visitor would use it.
package functests
