package camomile

const VERSION = "0.7.0"
