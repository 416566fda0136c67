package globals

var MetricsReloadChan = make(chan bool, 1)
