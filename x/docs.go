/*
Package x contains the extensions of the swap chain.

Extensions implement common functionality (Handler, Decorator,
etc.) and are combined together in the app package to construct
the application. This package holds the glue they share, mostly
the Authenticator used to check who signed a request.
*/
package x
