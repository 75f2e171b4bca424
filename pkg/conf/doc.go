/*
Package conf wraps kingpin so that every option of the dashboard can be given
either on the command line or through an environment variable with the DASH_
prefix. It provides:
- typed flags (string, int, bool, duration, IP) that fall back to their
  defaults until the configuration has been parsed,
- Process, which exposes the tagged fields of a config struct as flags,
- Dump, which prints the effective configuration as a sourceable env file,
- the logrus log level option shared by every binary.
*/
package conf
