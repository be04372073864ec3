package roots

// Windows has no preconfigured roots.
var platformProvider Provider = Unconfigured{}
