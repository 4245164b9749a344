/*
Package launcher implements the business intelligence of the audithive code
audit console.

The project has three main source packages:
`cmd`: Main applications, the platform launcher and the audit service.
`internal`: Private application and library code.
`pkg`: Library code that's ok to use by external applications
*/
package launcher
