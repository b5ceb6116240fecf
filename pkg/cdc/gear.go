package cdc

// gearTable drives the rolling hash. The values are fixed: changing any entry
// changes every chunk boundary and therefore every Data-Code ever produced.
// Derived as the SHA-256("iscc-sum-gear-v0" || counter) byte stream.
var gearTable = [256]uint64{
	0xf0bb8542799f5326, 0x67f0396af28f1653, 0x3b18914a1836e2cc, 0x4d036ddfa39e13b2,
	0xd8bd847c74317327, 0x7e0b6e69590cfaab, 0xee1ff960c03f6f11, 0xcdf29e99dc81ea71,
	0x04d3a13c0f3ac763, 0xef9afba5287840f7, 0x09924b1e5ec5d50b, 0x0c4029e4026aa1bd,
	0x33b0a1bd491dad88, 0x4d30e89f9bd03790, 0x648d7ae20207870f, 0x1c8d8c78c4ba551a,
	0x9129636c571354e4, 0xb4edb531c14fabe8, 0x2c8ddf89ac964911, 0x3b357fc35ca7c75a,
	0x1453c7baa7e8991a, 0xff4f09e021d78b0b, 0x1a57fb8f67ec1372, 0x06c333fcd8ce3a89,
	0x907d963fdd3e9514, 0xfe5fca0237d49027, 0xd59631cfebec52a1, 0x7b4d83b5aea64b6d,
	0x51f98624cbf4c15a, 0x4cf61b814f36aaac, 0x32c03c86ff9de3e8, 0x0ed1302fc32601c1,
	0xb71b65f1346fd7e3, 0x7a1c9a7483454256, 0xd5d8496d4cc8aa39, 0x186fb20060d961f2,
	0x93946646b0afa8c7, 0x158bca366a63d55c, 0x81fa46cd9cef6f57, 0x37504ab53e64fd4a,
	0xde8e43ba77d2275e, 0x2f95254e646000e1, 0x45cfc909b9c7f9f7, 0x92c5ac869994fb55,
	0xcb5d47989cf830fd, 0xc88d22fc358d850a, 0xb95787b10ce55c47, 0x0f935b6fe1c9efe0,
	0x232112e990f740bb, 0x6333e0bfd1501953, 0x36425ed859ceedde, 0xa73317ca730ccec6,
	0x8d2759f875a39eb0, 0x9a6942d8f99168cb, 0x4fa529b966f3d0d4, 0x44ef9c586eea5689,
	0xc24884bff169e959, 0x40c772f47c579e33, 0x74d8417c1cf058e3, 0x268318bc8d90b020,
	0x3aa2a8672d6c4614, 0x15c9f298e27e7c0b, 0x7b9f72e784d89032, 0x305ea463bbd48cdf,
	0xa00e6058c55aea14, 0x54265f001e4fc3fd, 0x2c2b1becd7500bab, 0x5ed36e77144aa325,
	0xcef496287a3d6886, 0xf7987a42d12d92ab, 0x5e7d2da44a79bb16, 0x3d29da9cbc82828a,
	0x4b96c45dc0808c84, 0x7dbc887e43b65da0, 0x2e43b6fc017c88eb, 0x496aefa848c9cd02,
	0x9c181a50c56a2aed, 0xe8344d96d6a84d09, 0xdcbb912e17537327, 0xf79518f7f63a069f,
	0x0a07e22e56e91eff, 0xf1993d070f04a565, 0xf907befbc8077963, 0x13e507e4175a000d,
	0x4a51fa2bc2f6c891, 0x952b5f7cdbf64652, 0xaf8118e7f86d2547, 0x4fcb210c91f84e62,
	0xe00b1662d78905de, 0x7a110b8c8b438fc1, 0x3b1f85e4cb34dbb1, 0x0a4f5350ee653914,
	0x714836d389afebfc, 0xf2a31e83ee649c11, 0xe66aef0d29337214, 0xfcecde133304cabf,
	0x7640a77d1e7055e2, 0x32c1f7a2caa95ca0, 0x7974d75a73e76e3e, 0x560ec549f736fdc1,
	0x1d1bbd2d55c0187b, 0xadd43886252d4aa9, 0x48d83c519cdf4935, 0x9da24416f52f0e47,
	0xbdaef8c4e47ee0d2, 0xe972bb3eb442ea14, 0xf5fd13462f3d7061, 0x056415c31a781fa5,
	0x9b8b06d7e9900db5, 0xa93d9cb4490a7f60, 0xdd3ac4d48ead2f71, 0x41eecc5b1c919e68,
	0xbda533219c4eccc9, 0x563c169ae7375991, 0x2b6ad7e9f09d5b29, 0xd6f69831f85bfe6a,
	0x90302c99014d0b99, 0x23c0e238446776ad, 0xeb33e5a1e09dd8e7, 0xb87fde2a128727f0,
	0x760640fbec0e38d8, 0xbefbc35aa885c733, 0x2443a74f138a50d5, 0xd2baab17036986da,
	0xc39fc60295c8a6a2, 0x309c8877ecbaa079, 0xb266c121f19ad052, 0x65e4bc6cb1609589,
	0x4d2c37c71aa7f930, 0x482913aa83f02506, 0xb943a2cef8091b29, 0x119c1e9ba47fb47d,
	0xfed866d2b66c7147, 0x17a9bd6f50eea53f, 0xd66a8c7c0b09c295, 0xc26f4240312d61a6,
	0x1afb2faea07a48f2, 0x72e2b281b3add9ea, 0x8a8cec5186063773, 0x2cc8da255baa51dc,
	0x4d807247a0ae61ea, 0xf73dec44933036ad, 0x172b1d4be57aa830, 0x24d2961c7dead4fe,
	0xd018ca6a4b5cdae1, 0x3514357b1833c643, 0xf42ccd50156fd73d, 0x52a42f2418e05ca3,
	0xc596d20bdcff6079, 0x7b4adee101192b7a, 0xf058823600aeda6b, 0x950d9cdbff52e7b3,
	0xc5533a4716b51c6a, 0xd7b6d064e145179a, 0xd063873124768b6c, 0x24b65a2eccc36ffd,
	0xc970e08d21fdccd1, 0xd7aa81aff524cf14, 0x776c48bb5e83c4bc, 0x282cab6c9b1fe4dc,
	0x68d05437631fc6e7, 0x1a7a08ae0313a802, 0xe9946e0450e8934c, 0x27c7c6a7494e6d3b,
	0x68e6b8b93391d7ce, 0x841d06728177e7ff, 0x1752e413e0f029bb, 0x13c6a3b4deaf0c2b,
	0x1b9e98a17ee0afe1, 0xf3672b938ba7f329, 0x1317cb74ce1f0926, 0x08f25b092f5679fa,
	0xead403e41dce46db, 0x76cc0b16a8e8afe0, 0xf4739c80822d0100, 0x689730e438a21967,
	0x0a1cc65bd12664d5, 0x0a66befa4b68355e, 0xb39ac0a43ebf0b1c, 0xe94f77934edf90ee,
	0x7b951994d254b7e7, 0xe421963fa786ad6b, 0x911ca568641c8b20, 0xba91b74d8b9a4529,
	0x55cedef1ba3d3d28, 0x992173ba3654d490, 0xc7fc9d05a95c911b, 0x5d184b8107efbb65,
	0x848d08418d02acbd, 0x58757487bd61e234, 0x948aaa6286de93c9, 0x8e8423fca9e6da6b,
	0xe0db06d67defe99c, 0xd0d396c36a8fc046, 0x9b313bef6f73fdcb, 0x5dba90e048a76528,
	0xcecf8a2a67c218c4, 0x27d3bb46e6f6853a, 0x3ff427f28212fad1, 0xe2958893eae8b5e6,
	0x3be4ad0d33d5b800, 0xdbe1953d807dc6be, 0x9545a7c17fc4c80b, 0xf286de0cc1fae511,
	0x7e34697d3bebdace, 0x1f8c88b9db5ca6f4, 0x9c858b42082d0a80, 0xa4ecbbac740edd3d,
	0xbd158f6902293d02, 0xc833be19c1700108, 0xc566ed339c10d6de, 0x5b22f6d889d5190d,
	0xc5687363c7583322, 0x2a9d79ec81ba613b, 0xa49d22a49231fb22, 0x4ce815871a23f278,
	0x06f206d4d75f834c, 0x876ec1ae628bc439, 0x9a253fbf8fbaf29c, 0xa08ad8fc1e6e8574,
	0xf80ce0e194f13585, 0xbd4e88581ddaacf8, 0x964dabfa2ee0bcdf, 0x51771e908f6c2a39,
	0x565d49c22aee8c24, 0x0726afbe952ee97c, 0x9831f97f5943c07e, 0xcfeb0f0aec8f18ad,
	0x83afca9db0f08791, 0x3e7eaaf5964454e9, 0x27e2cb875de7f256, 0xd65b1ebc5b24280a,
	0x39b9f963a8b49ab4, 0xd8a35464a310e0f1, 0x6d1bce8e32195c04, 0x95ad47e8b1b51351,
	0x1f28d589f79720f4, 0xfe623362ed33ff8e, 0x696de294484f8889, 0x606c094e21b37a4c,
	0x93a07c19050e91f0, 0x30e679b439ef3c92, 0x2ec956c764525de8, 0x242f241e3fca4baf,
	0xd424b4a826bd545a, 0x2f07f73aae05622f, 0x383affce9c85719f, 0x319e8a3ab65a10b4,
	0x19c4a6076911ce7e, 0xc40217a3066f9ab1, 0x4f76557375ff8656, 0x7adf2b2040912833,
	0x1248866913b1a188, 0x7164a28fcb1df647, 0x28cb79b9c12a350f, 0xfe565e2ebad1de9a,
}
